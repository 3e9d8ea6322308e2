package version

import "testing"

func TestVersion(t *testing.T) {
	defer func(original string) { appBuild = original }(appBuild)

	tests := []struct {
		build    string
		expected string
	}{
		{build: "", expected: "0.4.0"},
		{build: "rc1", expected: "0.4.0-rc1"},
		{build: "dev.3-g1a2b", expected: "0.4.0-dev.3-g1a2b"},
		{build: "bad build", expected: "0.4.0"},
	}
	for _, test := range tests {
		appBuild = test.build
		if version := Version(); version != test.expected {
			t.Fatalf("Version with build %q: got %s, want %s", test.build, version, test.expected)
		}
	}
}
