package launch

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/project-switch/project-switch/internal/cmd"
	"github.com/project-switch/project-switch/internal/namespace"
)

type recorder struct {
	calls    [][]string
	detached []bool
	err      error
}

func (r *recorder) wait(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	r.detached = append(r.detached, false)
	return r.err
}

func (r *recorder) start(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	r.detached = append(r.detached, true)
	return r.err
}

func (r *recorder) system(goos string) *System {
	return NewFor(goos, r.wait, r.start)
}

func (r *recorder) last(t *testing.T) []string {
	t.Helper()
	if len(r.calls) == 0 {
		t.Fatal("no process started")
	}
	return r.calls[len(r.calls)-1]
}

func TestOpenURL(t *testing.T) {
	t.Parallel()

	const u = "https://example.com/?q=a"

	tests := []struct {
		name    string
		goos    string
		browser string
		want    []string
	}{
		{"linux default", "linux", "Default", []string{"xdg-open", u}},
		{"linux named", "linux", "firefox", []string{"firefox", u}},
		{"linux with args", "linux", "firefox -P 'my work'", []string{"firefox", "-P", "my work", u}},
		{"darwin default", "darwin", "default", []string{"open", u}},
		{"darwin named", "darwin", "Safari", []string{"open", "-a", "Safari", u}},
		{"darwin with args", "darwin", "firefox -P work", []string{"open", "-a", "firefox", "--args", "-P", "work", u}},
		{"windows default", "windows", "default", []string{"powershell", "-Command", `Set-Location C:\; Start-Process '` + u + `'`}},
		{"windows with args", "windows", "chrome --incognito", []string{"powershell", "-Command", `Set-Location C:\; Start-Process 'chrome' '--incognito ` + u + `'`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{}
			if err := r.system(tt.goos).OpenURL(context.Background(), u, tt.browser); err != nil {
				t.Fatalf("OpenURL() error = %v", err)
			}
			if got := r.last(t); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("started %q, want %q", got, tt.want)
			}
			if r.detached[0] {
				t.Error("OpenURL() did not wait for the opener")
			}
		})
	}
}

func TestOpenURL_InvalidBrowser(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	s := r.system("linux")

	if err := s.OpenURL(context.Background(), "https://x", ""); !errors.Is(err, ErrEmptyBrowser) {
		t.Errorf("OpenURL(empty) = %v, want ErrEmptyBrowser", err)
	}
	if err := s.OpenURL(context.Background(), "https://x", "firefox 'unterminated"); err == nil {
		t.Error("OpenURL(bad quoting) = nil, want error")
	}
	if len(r.calls) != 0 {
		t.Errorf("started %v, want nothing", r.calls)
	}
}

func TestRunShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		goos    string
		command string
		args    string
		want    []string
	}{
		{"unix with args", "linux", "make", "-j4 test", []string{"sh", "-c", "make -j4 test"}},
		{"unix without args", "darwin", "code .", "", []string{"sh", "-c", "code ."}},
		{"windows", "windows", "code .", "--new-window", []string{"powershell", "-Command", "code .", "--new-window"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{}
			if err := r.system(tt.goos).RunShell(context.Background(), tt.command, tt.args); err != nil {
				t.Fatalf("RunShell() error = %v", err)
			}
			if got := r.last(t); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("started %q, want %q", got, tt.want)
			}
			if !r.detached[0] {
				t.Error("RunShell() should not wait for the command")
			}
		})
	}
}

func TestRunShell_SyntaxError(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	err := r.system("linux").RunShell(context.Background(), "echo 'oops", "")
	if err == nil || !strings.Contains(err.Error(), "shell syntax error") {
		t.Errorf("RunShell() error = %v, want syntax error", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("started %v after syntax error", r.calls)
	}
}

func TestLaunchPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		goos string
		path string
		want []string
	}{
		{"desktop entry", "linux", "/usr/share/applications/firefox.desktop", []string{"gio", "launch", "/usr/share/applications/firefox.desktop"}},
		{"linux file", "linux", "/tmp/report.pdf", []string{"xdg-open", "/tmp/report.pdf"}},
		{"app bundle", "darwin", "/Applications/Safari.app", []string{"open", "/Applications/Safari.app"}},
		{"windows link", "windows", `C:\Users\me\Desktop\It's.lnk`, []string{"powershell", "-Command", `Start-Process 'C:\Users\me\Desktop\It''s.lnk'`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{}
			if err := r.system(tt.goos).LaunchPath(context.Background(), tt.path); err != nil {
				t.Fatalf("LaunchPath() error = %v", err)
			}
			if got := r.last(t); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("started %q, want %q", got, tt.want)
			}
			if r.detached[0] {
				t.Error("LaunchPath() did not wait for the opener")
			}
		})
	}
}

func TestLaunchFailureReported(t *testing.T) {
	t.Parallel()

	failed := errors.New("exit status 4")
	tests := []struct {
		name string
		call func(*System) error
		want string
	}{
		{"default browser", func(s *System) error {
			return s.OpenURL(context.Background(), "https://example.com", "default")
		}, "failed to launch xdg-open"},
		{"named browser", func(s *System) error {
			return s.OpenURL(context.Background(), "https://example.com", "false")
		}, "failed to launch false"},
		{"desktop entry", func(s *System) error {
			return s.LaunchPath(context.Background(), "/definitely/missing/path.desktop")
		}, "failed to launch gio"},
		{"file", func(s *System) error {
			return s.LaunchPath(context.Background(), "/tmp/x")
		}, "failed to launch xdg-open"},
		{"shell", func(s *System) error {
			return s.RunShell(context.Background(), "make", "")
		}, "failed to launch sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{err: failed}
			err := tt.call(r.system("linux"))
			if !errors.Is(err, failed) || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q wrapping %v", err, tt.want, failed)
			}
			if len(r.calls) != 1 {
				t.Errorf("started %d times, want exactly once", len(r.calls))
			}
		})
	}
}

func TestSystem_WaitsForFailingOpener(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("needs the false utility")
	}
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not on PATH")
	}

	s := NewFor("linux", waitFor, cmd.Start)
	if err := s.OpenURL(context.Background(), "https://example.com", "false"); err == nil {
		t.Error("OpenURL() with an opener exiting non-zero = nil, want error")
	}
}

type fakeLauncher struct {
	got string
}

func (f *fakeLauncher) OpenURL(_ context.Context, url, browser string) error {
	f.got = "url " + url + " " + browser
	return nil
}

func (f *fakeLauncher) RunShell(_ context.Context, command, args string) error {
	f.got = "shell " + command + " " + args
	return nil
}

func (f *fakeLauncher) LaunchPath(_ context.Context, path string) error {
	f.got = "path " + path
	return nil
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action namespace.Action
		want   string
	}{
		{namespace.OpenURL{URL: "https://x", Browser: "firefox"}, "url https://x firefox"},
		{namespace.RunShell{Command: "make", Args: "test"}, "shell make test"},
		{namespace.LaunchPath{Path: "/tmp"}, "path /tmp"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			f := &fakeLauncher{}
			if err := Dispatch(context.Background(), f, tt.action); err != nil {
				t.Fatal(err)
			}
			if f.got != tt.want {
				t.Errorf("Dispatch() = %q, want %q", f.got, tt.want)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if _, ok := FromContext(context.Background()).(*System); !ok {
		t.Error("FromContext() without a launcher should return the system launcher")
	}

	f := &fakeLauncher{}
	if got := FromContext(WithLauncher(context.Background(), f)); got != f {
		t.Errorf("FromContext() = %v, want the attached launcher", got)
	}
}
