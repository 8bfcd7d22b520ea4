package model

import "testing"

func TestParseSkillsDelimiters(t *testing.T) {
	set := ParseSkills("Python, SQL; go ,")
	if len(set) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(set))
	}
	for _, tok := range []string{"python", "sql", "go"} {
		if !set.Contains(tok) {
			t.Errorf("missing token %q", tok)
		}
	}
}

func TestParseSkillsEmpty(t *testing.T) {
	for _, raw := range []string{"", "  ", ",;,", ";"} {
		if set := ParseSkills(raw); len(set) != 0 {
			t.Errorf("ParseSkills(%q) = %v, want empty", raw, set.Sorted())
		}
	}
}

func TestIntersectAndJoin(t *testing.T) {
	a := ParseSkills("python,sql,go")
	b := ParseSkills("SQL;Rust;Python")
	got := a.Intersect(b).Join()
	if got != "python,sql" {
		t.Fatalf("intersection = %q, want %q", got, "python,sql")
	}
}

func TestDiff(t *testing.T) {
	have := ParseSkills("python")
	want := ParseSkills("python,kubernetes,terraform")
	missing := have.Diff(want).Sorted()
	if len(missing) != 2 || missing[0] != "kubernetes" || missing[1] != "terraform" {
		t.Fatalf("diff = %v", missing)
	}
}

func TestClassifyUtilizationBoundaries(t *testing.T) {
	cases := []struct {
		u    float64
		want BenchStatus
	}{
		{0, OnBench},
		{19.99, OnBench},
		{20, PartiallyUtilized},
		{49.99, PartiallyUtilized},
		{50, FullyUtilized},
		{100, FullyUtilized},
	}
	for _, c := range cases {
		if got := ClassifyUtilization(c.u); got != c.want {
			t.Errorf("ClassifyUtilization(%v) = %q, want %q", c.u, got, c.want)
		}
	}
}

func TestCountersClampNegative(t *testing.T) {
	e := Employee{TasksCompleted: -3, MeetingHours: 2}
	tasks, meetings, decisions, docs := e.Counters()
	if tasks != 0 || meetings != 2 || decisions != 0 || docs != 0 {
		t.Fatalf("got (%v,%v,%v,%v)", tasks, meetings, decisions, docs)
	}
}
