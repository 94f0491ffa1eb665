package modload

import "testing"

func TestDirToModule(t *testing.T) {
	cases := []struct {
		name, want string
	}{
		{"user_profile", "User_Profile"},
		{"geometry", "Geometry"},
		{"std", "Std"},
		{"collections", "Collections"},
		{"foo__bar", "Foo__Bar"},
		{"a", "A"},
	}
	for _, c := range cases {
		if got := DirToModule(c.name); got != c.want {
			t.Errorf("DirToModule(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
