package typist_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTypist(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Typist Suite")
}
