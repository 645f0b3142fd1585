package input

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"up", KeyUp, false},
		{"UP", KeyUp, false},
		{"a", Key('a'), false},
		{"A", Key('A'), false},
		{" ", KeySpace, false},
		{"space", KeySpace, false},
		{"pgdown", KeyPageDown, false},
		{"nope", KeyNone, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKey_StringRoundTrip(t *testing.T) {
	for k, name := range keyNames {
		if k.String() != name {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), name)
		}
		back, err := ParseKey(name)
		if err != nil || back != k {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", name, back, err, k)
		}
	}
	if got := Key('x').String(); got != "x" {
		t.Errorf("Key('x').String() = %q", got)
	}
}

func TestEvent_String(t *testing.T) {
	if got := Click(3, 4, ButtonRight).String(); got != "click right at 3,4" {
		t.Errorf("got %q", got)
	}
	if got := Release(KeyEnter).String(); got != "release enter" {
		t.Errorf("got %q", got)
	}
}
