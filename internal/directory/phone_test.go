package directory

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local form", "0501234567", "501234567"},
		{"international form", "972501234567", "501234567"},
		{"plus and dashes", "+972-50-123-4567", "501234567"},
		{"spaces", "050 123 4567", "501234567"},
		{"already bare", "501234567", "501234567"},
		{"empty", "", ""},
		{"no digits", "לא ידוע", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneFormsAgree(t *testing.T) {
	local := NormalizePhone("0507448229")
	intl := NormalizePhone("972507448229")
	if local != intl {
		t.Errorf("local %q and international %q normalize differently", local, intl)
	}
}
