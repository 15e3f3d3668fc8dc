package weather

import (
	"encoding/json"
	"testing"
)

const samplePayload = `{
	"current_condition": [{
		"temp_C": "31",
		"humidity": "62",
		"pressure": "1008",
		"weatherDesc": [{"value": "Partly cloudy"}],
		"lang_ja": [{"value": "晴れ時々曇り"}]
	}],
	"nearest_area": [{
		"areaName": [{"value": "Tokyo"}]
	}]
}`

func decode(t *testing.T, payload string) any {
	t.Helper()
	var jobj any
	if err := json.Unmarshal([]byte(payload), &jobj); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	return jobj
}

func TestParse(t *testing.T) {
	r, err := parse(decode(t, samplePayload), "tokyo")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.TempC != 31 || r.Humidity != 62 || r.PressureHPa != 1008 {
		t.Errorf("numbers = %d°C %d%% %dhPa, want 31 62 1008", r.TempC, r.Humidity, r.PressureHPa)
	}
	if r.Condition != "晴れ時々曇り" {
		t.Errorf("condition = %q, want the localized description", r.Condition)
	}
	if r.City != "Tokyo" {
		t.Errorf("city = %q, want nearest area Tokyo", r.City)
	}
}

func TestParseFallsBackToEnglish(t *testing.T) {
	payload := `{"current_condition": [{"temp_C": "5", "weatherDesc": [{"value": "Snow"}]}]}`
	r, err := parse(decode(t, payload), "sapporo")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Condition != "Snow" {
		t.Errorf("condition = %q, want Snow", r.Condition)
	}
	if r.City != "sapporo" {
		t.Errorf("city = %q, want the requested location when no nearest area", r.City)
	}
}

func TestParseEmptyConditions(t *testing.T) {
	if _, err := parse(decode(t, `{"current_condition": []}`), "nowhere"); err == nil {
		t.Error("parse accepted a payload without current conditions")
	}
}

func TestPressureStatus(t *testing.T) {
	testCases := []struct {
		pressure int
		want     string
	}{
		{998, "低気圧注意"},
		{1004, "低気圧注意"},
		{1005, "やや低い"},
		{1009, "やや低い"},
		{1010, "安定"},
		{1013, "安定"},
	}
	for _, tc := range testCases {
		r := &Report{PressureHPa: tc.pressure}
		if got := r.PressureStatus(); got != tc.want {
			t.Errorf("PressureStatus(%d) = %q, want %q", tc.pressure, got, tc.want)
		}
	}
}
