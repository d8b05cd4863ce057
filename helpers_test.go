package main

import (
	"encoding/json"
	"testing"
)

func TestCleanJson(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, c := range cases {
		if got := CleanJson(c.in); got != c.want {
			t.Fatalf("CleanJson(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestTemplatesFromPayloadCoercion(t *testing.T) {
	raw := `{
		"tasks": [
			{"theme":"Foundations","task":"Read the docs","resources":["Docs","Course"],"estTime":"2h","xp":40},
			{"task":"","resources":"","estTime":"","xp":"not a number"},
			{"theme":"Practice","task":"Build something","resources":null,"xp":-5}
		]
	}`
	payload := &planPayload{}
	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	templates := templatesFromPayload(payload, "2-3")
	if len(templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(templates))
	}
	if templates[0].Resource != "Docs, Course" || templates[0].XP != 40 {
		t.Fatalf("well-formed template mangled: %+v", templates[0])
	}
	if templates[1].Description != "Learning task" || templates[1].Theme != "Focused Study" {
		t.Fatalf("empty fields should default: %+v", templates[1])
	}
	if templates[1].EstimatedTime != "2h30m" {
		t.Fatalf("missing estTime should use the band estimate, got %q", templates[1].EstimatedTime)
	}
	if templates[1].XP != 60 || templates[2].XP != 60 {
		t.Fatalf("bad xp values should default to 60: %d, %d", templates[1].XP, templates[2].XP)
	}
	if templates[2].Resource != "Suggested resources" {
		t.Fatalf("null resources should default, got %q", templates[2].Resource)
	}
}

func TestSkillsFromPayloadCoercion(t *testing.T) {
	raw := `{
		"skills": [
			{"name":"Kubernetes","priority":"High","estimatedTime":"12 hours","resources":["Docs"]},
			{"resources":"One course"}
		]
	}`
	payload := &planPayload{}
	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	skills := skillsFromPayload(payload)
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	if skills[0].Name != "Kubernetes" || len(skills[0].Resources) != 1 {
		t.Fatalf("well-formed skill mangled: %+v", skills[0])
	}
	if skills[1].Name != "Skill" || skills[1].Priority != "Medium" {
		t.Fatalf("missing fields should default: %+v", skills[1])
	}
	if len(skills[1].Resources) != 1 || skills[1].Resources[0] != "One course" {
		t.Fatalf("string resources should become a single-item list: %+v", skills[1].Resources)
	}
}
