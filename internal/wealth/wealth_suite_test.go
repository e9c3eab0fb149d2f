package wealth_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestWealth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Wealth Model Suite")
}
