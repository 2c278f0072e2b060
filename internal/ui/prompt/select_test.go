package prompt

import (
	"testing"
)

func TestSelectModel_Update(t *testing.T) {
	t.Parallel()

	options := []string{"alpha", "beta", "gamma-service", "delta"}

	tests := []struct {
		name    string
		current string
		typ     string
		keys    []string
		want    int
	}{
		{name: "enter picks first", keys: []string{"enter"}, want: 0},
		{name: "cursor starts on current", current: "gamma-service", keys: []string{"enter"}, want: 2},
		{name: "down then enter", keys: []string{"down", "down", "enter"}, want: 2},
		{name: "down stops at last", keys: []string{"down", "down", "down", "down", "down", "enter"}, want: 3},
		{name: "fuzzy filter", typ: "gsv", keys: []string{"enter"}, want: 2},
		{name: "filter resets cursor", current: "delta", typ: "bet", keys: []string{"enter"}, want: 1},
		{name: "no match selects nothing", typ: "zzz", keys: []string{"enter"}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := typeText(newSelectModel("Switch project", options, tt.current), tt.typ)
			for _, k := range tt.keys {
				m, _ = m.Update(keyPress(k))
			}
			sm := m.(selectModel)
			if !sm.done {
				t.Fatal("model not done")
			}
			if sm.selected != tt.want {
				t.Errorf("selected = %d, want %d", sm.selected, tt.want)
			}
		})
	}
}

func TestSelectModel_Cancel(t *testing.T) {
	t.Parallel()

	m, cmd := newSelectModel("Switch project", []string{"alpha"}, "").Update(keyPress("esc"))
	sm := m.(selectModel)
	if !sm.cancelled || cmd == nil {
		t.Errorf("cancelled = %v, cmd = %v, want cancelled with quit", sm.cancelled, cmd)
	}
}

func TestSelect_NoOptionsCancels(t *testing.T) {
	t.Parallel()

	res, err := Select("Switch project", nil, "")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !res.Cancelled {
		t.Error("Select() with no options should be cancelled")
	}
}

func TestTextInputModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("required refuses blank", func(t *testing.T) {
		t.Parallel()
		m, cmd := newTextInputModel("Project name", "", "", true).Update(keyPress("enter"))
		tm := m.(textInputModel)
		if tm.done || !tm.invalid || cmd != nil {
			t.Errorf("done = %v, invalid = %v, want refused", tm.done, tm.invalid)
		}
		m = typeText(tm, "api")
		m, _ = m.Update(keyPress("enter"))
		tm = m.(textInputModel)
		if !tm.done || tm.textInput.Value() != "api" {
			t.Errorf("done = %v, value = %q, want api", tm.done, tm.textInput.Value())
		}
	})

	t.Run("initial value is editable", func(t *testing.T) {
		t.Parallel()
		m := typeText(newTextInputModel("Path", "", "~/src", false), "/api")
		m, _ = m.Update(keyPress("enter"))
		if got := m.(textInputModel).textInput.Value(); got != "~/src/api" {
			t.Errorf("value = %q, want ~/src/api", got)
		}
	})

	t.Run("esc cancels", func(t *testing.T) {
		t.Parallel()
		m, _ := newTextInputModel("Path", "", "", false).Update(keyPress("esc"))
		if !m.(textInputModel).cancelled {
			t.Error("esc should cancel")
		}
	})
}
