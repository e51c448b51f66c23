package format

import "testing"

func TestQueueName(t *testing.T) {
	tests := []struct {
		name    string
		queueID int
		want    string
	}{
		{"ranked solo", 420, "Ranked Solo/Duo"},
		{"ranked flex", 440, "Ranked Flex"},
		{"normal draft", 400, "Normal (Draft)"},
		{"normal blind", 430, "Normal (Blind)"},
		{"aram", 450, "ARAM"},
		{"arena", 1700, "Arena"},
		{"urf", 1900, "URF"},
		{"unknown queue", 999, "Other (999)"},
		{"zero queue", 0, "Other (0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QueueName(tt.queueID); got != tt.want {
				t.Errorf("QueueName(%d) = %q, want %q", tt.queueID, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"typical game", 1830, "30m 30s"},
		{"under a minute", 42, "0m 42s"},
		{"exact minute", 1200, "20m 00s"},
		{"single digit seconds padded", 605, "10m 05s"},
		{"zero", 0, "0m 00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.seconds); got != tt.want {
				t.Errorf("Duration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"under a thousand", 999, "999"},
		{"exactly a thousand", 1000, "1,000"},
		{"typical damage total", 23841, "23,841"},
		{"millions", 1234567, "1,234,567"},
		{"zero", 0, "0"},
		{"negative", -4200, "-4,200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.n); got != tt.want {
				t.Errorf("Number(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestRatioAndPercent(t *testing.T) {
	if got := Ratio(8); got != "8.00" {
		t.Errorf("Ratio(8) = %q, want %q", got, "8.00")
	}
	if got := Ratio(4.125); got != "4.12" {
		t.Errorf("Ratio(4.125) = %q, want %q", got, "4.12")
	}
	if got := Percent(66.7); got != "66.7" {
		t.Errorf("Percent(66.7) = %q, want %q", got, "66.7")
	}
	if got := Percent(100); got != "100.0" {
		t.Errorf("Percent(100) = %q, want %q", got, "100.0")
	}
}
