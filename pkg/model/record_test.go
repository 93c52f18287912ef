package model

import "testing"

func TestIsListening(t *testing.T) {
	tests := []struct {
		state string
		want  bool
	}{
		{"LISTEN", true},
		{"(LISTEN)", true},
		{"listen", true},
		{"ESTABLISHED", false},
		{"UDP", false},
		{"UNKNOWN", false},
	}

	for _, tt := range tests {
		r := PortRecord{State: tt.state}
		if got := r.IsListening(); got != tt.want {
			t.Errorf("IsListening(%q) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestKeyIdentity(t *testing.T) {
	a := PortRecord{PID: 1, Port: 80, Protocol: "TCP", State: "LISTEN", Address: "*:80"}
	b := PortRecord{PID: 1, Port: 80, Protocol: "TCP", State: "LISTEN", Address: "127.0.0.1:80"}
	c := PortRecord{PID: 1, Port: 80, Protocol: "UDP", State: "LISTEN"}

	if a.Key() != b.Key() {
		t.Error("address must not participate in identity")
	}
	if a.Key() == c.Key() {
		t.Error("protocol must participate in identity")
	}
}
