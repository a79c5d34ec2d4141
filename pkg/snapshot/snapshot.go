// Package snapshot compares values against JSON files kept in testdata
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

// Validate compares obj with testdata/<test name>-<call>.json
// A missing snapshot is written and the test passes
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", fileName(t.Name()), nextCall(t.Name())))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatalf("could not read snapshot: %v", err)
		}

		if err := create(filename, objJSON); err != nil {
			t.Fatalf("could not write snapshot: %v", err)
		}

		return true
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextCall(name string) int {
	mu.Lock()
	defer mu.Unlock()

	call := callCount[name]
	callCount[name] = call + 1
	return call
}

// fileName makes subtest names safe to use as a file name
func fileName(testName string) string {
	return strings.NewReplacer("/", "_", " ", "_").Replace(testName)
}

func create(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}
