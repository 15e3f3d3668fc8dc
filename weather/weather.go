// Package weather fetches current conditions from the wttr.in JSON API
// for the home-screen weather widget.
package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

/*
	wttr.in/<location>?format=j1 responds with:

	{
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
	}
*/

const baseURL = "https://wttr.in"

// Report is a snapshot of current conditions for one location.
type Report struct {
	City        string `json:"city"`
	TempC       int    `json:"temp_c"`
	Condition   string `json:"condition"`
	PressureHPa int    `json:"pressure_hpa"`
	Humidity    int    `json:"humidity"`
}

// Fetch gets the current conditions for a location (a city name or
// "lat,lon" pair). The Japanese condition text is preferred when the
// service provides one; the reported city is the nearest area resolved
// by the service, which reads better than raw coordinates.
func Fetch(client *http.Client, location string) (*Report, error) {
	addr := fmt.Sprintf("%s/%s?format=j1&lang=ja", baseURL, url.PathEscape(location))

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch weather for %q: %w", location, err)
	}
	return parse(jobj, location)
}

// parse extracts a Report from the decoded j1 payload.
func parse(jobj any, location string) (*Report, error) {
	r := &Report{City: location}

	temp, err := stringAt(jobj, "$.current_condition[0].temp_C")
	if err != nil {
		return nil, fmt.Errorf("no current conditions for %q: %w", location, err)
	}
	r.TempC, _ = strconv.Atoi(temp)

	if p, err := stringAt(jobj, "$.current_condition[0].pressure"); err == nil {
		r.PressureHPa, _ = strconv.Atoi(p)
	}
	if h, err := stringAt(jobj, "$.current_condition[0].humidity"); err == nil {
		r.Humidity, _ = strconv.Atoi(h)
	}

	// prefer the localized description over the english one
	if desc, err := stringAt(jobj, "$.current_condition[0].lang_ja[0].value"); err == nil && desc != "" {
		r.Condition = desc
	} else if desc, err := stringAt(jobj, "$.current_condition[0].weatherDesc[0].value"); err == nil {
		r.Condition = desc
	}

	if area, err := stringAt(jobj, "$.nearest_area[0].areaName[0].value"); err == nil && area != "" {
		r.City = area
	}
	return r, nil
}

// stringAt resolves a jsonpath expression to a single string value.
func stringAt(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", err
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	str, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is %T, not a string", path, jval)
	}
	return str, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// PressureStatus labels the barometric pressure for the widget's
// headache warning: standard pressure is about 1013 hPa.
func (r *Report) PressureStatus() string {
	switch {
	case r.PressureHPa < 1005:
		return "低気圧注意"
	case r.PressureHPa < 1010:
		return "やや低い"
	default:
		return "安定"
	}
}
