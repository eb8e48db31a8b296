package samplestats

import (
	"context"
	"strings"
	"testing"
)

func TestRenderHTML_Example(t *testing.T) {
	report, err := examplePipeline(t).Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	body, err := RenderHTML(report)
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}

	html := string(body)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"3, 1, 2, 2, 3, 3, 1, 5, 4, 2, 1, 5, 3, 2",
		"1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 5, 5",
		"<tr><td>4</td><td>1</td></tr>",
		"<tr><td>3</td><td>11</td></tr>",
		"<tr><td>5</td><td>14</td></tr>",
		"<tr><td>1</td><td>0.21</td></tr>",
		"<tr><td>2</td><td>0.29</td></tr>",
		"<tr><td>3</td><td>0.29</td></tr>",
		"<tr><td>4</td><td>0.07</td></tr>",
		"<tr><td>5</td><td>0.14</td></tr>",
		report.Fingerprint,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report is missing %q", want)
		}
	}
}

func TestRenderHTML_TablesAscending(t *testing.T) {
	report, err := examplePipeline(t).Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	body, err := RenderHTML(report)
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}

	html := string(body)
	start := strings.Index(html, `<table id="distribution">`)
	end := strings.Index(html, `<table id="cumulative">`)

	if start < 0 || end < start {
		t.Fatalf("distribution table not found")
	}

	dist := html[start:end]

	// 3 is the first value of the sample but 1 must be rendered first
	if strings.Index(dist, "<tr><td>1</td>") > strings.Index(dist, "<tr><td>3</td>") {
		t.Fatalf("distribution rows are not in ascending order:\n%s", dist)
	}
}
