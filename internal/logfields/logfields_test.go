package logfields

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHelpers(t *testing.T) {
	assert.Equal(t, KeyLogger, Logger("ppt.versioning").Key)
	assert.Equal(t, "ppt.versioning", Logger("ppt.versioning").Value.String())
	assert.Equal(t, int64(127), ExitCode(127).Value.Int64())
	assert.Equal(t, int64(4), Index(4).Value.Int64())
	assert.Equal(t, "1.2.3", Version("1.2.3").Value.String())
}

func TestDuration(t *testing.T) {
	attr := Duration(1500 * time.Microsecond)
	assert.Equal(t, KeyDurationMS, attr.Key)
	assert.InDelta(t, 1.5, attr.Value.Float64(), 0.0001)
}

func TestError(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}
