package scoring

import "testing"

func TestCheckDigitRoundTrip(t *testing.T) {
	// For any body, the digit we compute must be the one we accept.
	bodies := []string{"1234567", "12345678", "7654321", "9999999", "1000003", "20304050"}
	for _, body := range bodies {
		dv := CheckDigit(body)
		if !ValidRUT(body + "-" + dv) {
			t.Errorf("ValidRUT(%s-%s) = false, want true", body, dv)
		}
		// every other symbol must be rejected
		for _, other := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "K"} {
			if other == dv {
				continue
			}
			if ValidRUT(body + "-" + other) {
				t.Errorf("ValidRUT(%s-%s) = true, want false (real DV %s)", body, other, dv)
			}
		}
	}
}

func TestValidRUTMalformed(t *testing.T) {
	for _, v := range []string{"", "-", "12345678", "12345678-", "-5", "1234a678-5", "12345678-55"} {
		if ValidRUT(v) {
			t.Errorf("ValidRUT(%q) = true, want false", v)
		}
	}
}

func TestScoreRUTStages(t *testing.T) {
	body := "12345678"
	dv := CheckDigit(body)

	cases := []struct {
		valor string
		want  float64
	}{
		{body + "-" + dv, 1.0}, // all stages
		{"12345678-5", 0.6},    // shape ok, wrong DV: 0.1 + 0.2 + 0.3
		{"123456", 0.1},        // content only, too few digits
		{"1234567", 0.3},       // enough digits, no DV shape
		{"12.345.678", 0.3},    // separators stripped for the digit count
	}
	for _, c := range cases {
		if got := scoreRUT(c.valor); got != c.want {
			t.Errorf("scoreRUT(%q) = %v, want %v", c.valor, got, c.want)
		}
	}

	if dv == "5" {
		t.Fatalf("test premise broken: computed DV for %s is 5", body)
	}
}
