package core_test

import (
	"testing"

	"github.com/jmgilman/go/chanio/fs/core"
)

func TestFSType_String(t *testing.T) {
	tests := map[core.FSType]string{
		core.FSTypeUnknown: "unknown",
		core.FSTypeLocal:   "local",
		core.FSTypeMemory:  "memory",
		core.FSType(999):   "unknown",
	}

	for fsType, expected := range tests {
		if got := fsType.String(); got != expected {
			t.Errorf("FSType(%d).String() = %q, want %q", fsType, got, expected)
		}
	}
}
