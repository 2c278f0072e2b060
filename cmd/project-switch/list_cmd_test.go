package main

import (
	"strings"
	"testing"
)

func TestListCmd_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "url command with encoded args",
			args: []string{"mail", "hello", "world"},
			want: "url https://mail.example.com/search?q=hello%20world firefox",
		},
		{
			name: "keyword is case-insensitive",
			args: []string{"MAIL"},
			want: "url https://mail.example.com/search?q= firefox",
		},
		{
			name: "substring match",
			args: []string{"bui"},
			want: "shell make build",
		},
		{
			name: "global command",
			args: []string{"wiki"},
			want: "url https://wiki.local/ firefox",
		},
		{
			name: "unknown url-like keyword opens in default browser",
			args: []string{"example.com/path"},
			want: "url https://example.com/path firefox",
		},
		{
			name:  "decorated stdin line",
			stdin: "build [cmd] → make build\n",
			want:  "shell make build",
		},
		{
			name:  "plain stdin line with args",
			stdin: "mail a+b\n",
			want:  "url https://mail.example.com/search?q=a%2Bb firefox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t, testConfig)
			if err := env.run(t, newListCmd(), tt.stdin, tt.args...); err != nil {
				t.Fatalf("list error = %v", err)
			}
			if len(env.launcher.calls) != 1 || env.launcher.calls[0] != tt.want {
				t.Errorf("launcher calls = %v, want [%s]", env.launcher.calls, tt.want)
			}
		})
	}
}

func TestListCmd_ExistingPathLaunches(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig)
	dir := t.TempDir()
	if err := env.run(t, newListCmd(), "", dir); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if len(env.launcher.calls) != 1 || env.launcher.calls[0] != "path "+dir {
		t.Errorf("launcher calls = %v, want [path %s]", env.launcher.calls, dir)
	}
}

func TestListCmd_ResolutionErrorsWarn(t *testing.T) {
	t.Parallel()

	noProject := strings.Replace(testConfig, "currentProject: alpha\n", "", 1)

	tests := []struct {
		name    string
		config  string
		args    []string
		wantLog string
	}{
		{name: "unknown keyword", config: testConfig, args: []string{"nope"}, wantLog: "no item matches"},
		{name: "did you mean", config: testConfig, args: []string{"bld"}, wantLog: "did you mean build"},
		{name: "command without url", config: testConfig, args: []string{"empty"}, wantLog: "empty"},
		{name: "no current project", config: noProject, args: []string{"mail"}, wantLog: "no current project"},
		{name: "dangling current project", config: strings.Replace(testConfig, "currentProject: alpha", "currentProject: gone", 1), args: []string{"mail"}, wantLog: "current project not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t, tt.config)
			if err := env.run(t, newListCmd(), "", tt.args...); err != nil {
				t.Fatalf("list error = %v, want nil", err)
			}
			if len(env.launcher.calls) != 0 {
				t.Errorf("launcher calls = %v, want none", env.launcher.calls)
			}
			if !strings.Contains(strings.ToLower(env.logs.String()), strings.ToLower(tt.wantLog)) {
				t.Errorf("logs = %q, want to contain %q", env.logs.String(), tt.wantLog)
			}
		})
	}
}

func TestListCmd_Print(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig)
	if err := env.run(t, newListCmd(), "", "--print", "build", "test"); err != nil {
		t.Fatalf("list --print error = %v", err)
	}
	if got := env.out.String(); got != "run make build test\n" {
		t.Errorf("output = %q, want %q", got, "run make build test\n")
	}
	if len(env.launcher.calls) != 0 {
		t.Errorf("--print launched %v", env.launcher.calls)
	}
}

func TestListCmd_Items(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig)
	if err := env.run(t, newListCmd(), "", "--items"); err != nil {
		t.Fatalf("list --items error = %v", err)
	}
	want := []string{
		"mail [cmd] → https://mail.example.com/search?q=",
		"build [cmd] → make build",
		"empty [cmd]",
		"wiki [global] → https://wiki.local/",
	}
	got := strings.Split(strings.TrimRight(env.out.String(), "\n"), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("items =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestListCmd_EmptyStdinDoesNothing(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig)
	if err := env.run(t, newListCmd(), ""); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if len(env.launcher.calls) != 0 {
		t.Errorf("launcher calls = %v, want none", env.launcher.calls)
	}
}

func TestOpenCmd(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig)
	if err := env.run(t, newOpenCmd(), "", "wiki"); err != nil {
		t.Fatalf("open error = %v", err)
	}
	if len(env.launcher.calls) != 1 || env.launcher.calls[0] != "url https://wiki.local/ firefox" {
		t.Errorf("launcher calls = %v", env.launcher.calls)
	}

	if err := env.run(t, newOpenCmd(), ""); err == nil {
		t.Error("open without a keyword should fail")
	}
}
