package cli

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Warn(t *testing.T) {
	var buf bytes.Buffer

	s := &status{out: &buf}
	s.warn("/data/locked", errors.New("permission denied"))

	assert.Equal(t, "warning: skipping /data/locked: permission denied\n", buf.String())
}

func TestStatus_WarnClearsProgressLine(t *testing.T) {
	var buf bytes.Buffer

	s := &status{out: &buf, progress: true}
	s.update(3, 2048)
	s.warn("/x", errors.New("boom"))

	assert.Equal(t, "\r\033[2KScanning… 3 files, 2.0 KiB\r\r\033[2Kwarning: skipping /x: boom\n", buf.String())
}

func TestStatus_ConcurrentWritesStayWhole(t *testing.T) {
	var (
		buf bytes.Buffer
		wg  sync.WaitGroup
	)

	s := &status{out: &buf, progress: true}

	for i := range 50 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			s.warn("/dir/"+strconv.Itoa(i), errors.New("denied"))
		}()

		go func() {
			defer wg.Done()

			s.update(int64(i), 0)
		}()
	}

	wg.Wait()

	out := buf.String()
	for i := range 50 {
		assert.Contains(t, out, "warning: skipping /dir/"+strconv.Itoa(i)+": denied\n")
		assert.Contains(t, out, "\r\033[2KScanning… "+strconv.Itoa(i)+" files, 0 B\r")
	}

	assert.Equal(t, 50, strings.Count(out, "warning: skipping "))
	assert.Equal(t, 50, strings.Count(out, "Scanning… "))
}
