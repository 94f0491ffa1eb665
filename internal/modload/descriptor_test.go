package modload

import "testing"

func TestDescriptorDottedPath(t *testing.T) {
	cases := []struct {
		components []string
		want       string
	}{
		{[]string{"User_Profile"}, "User_Profile"},
		{[]string{"Std", "Collections"}, "Std.Collections"},
		{nil, ""},
	}
	for _, c := range cases {
		d := Descriptor{PathComponents: c.components}
		if got := d.DottedPath(); got != c.want {
			t.Errorf("DottedPath() = %q, want %q", got, c.want)
		}
	}
}
