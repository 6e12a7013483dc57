package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	_, found := os.LookupEnv("GF_TEST_FOO")

	a.False(found)
	unset1 := SetEnv("GF_TEST_FOO", "bar")
	a.Equal("bar", os.Getenv("GF_TEST_FOO"))

	unset2 := SetEnv("GF_TEST_FOO", "bar2")
	a.Equal("bar2", os.Getenv("GF_TEST_FOO"))
	unset2()
	a.Equal("bar", os.Getenv("GF_TEST_FOO"))
	unset1()

	_, found = os.LookupEnv("GF_TEST_FOO")
	a.False(found)
}

func TestGetenv(t *testing.T) {
	a := assert.New(t)
	a.Equal("fallback", Getenv("GF_TEST_MISSING", "fallback"))

	defer SetEnv("GF_TEST_SET", "value")()
	a.Equal("value", Getenv("GF_TEST_SET", "fallback"))
}
