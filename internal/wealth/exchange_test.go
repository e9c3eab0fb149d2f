package wealth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/agentviz/internal/wealth"
)

var _ = Describe("Exchange dynamics", func() {
	var model *wealth.Model

	BeforeEach(func() {
		var err error
		model, err = wealth.NewModel(50, 10, 10, 20260825)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts with perfect equality", func() {
		Expect(wealth.GiniOf(model.Wealths())).To(BeZero())
	})

	It("keeps every agent on the grid while stepping", func() {
		for i := 0; i < 200; i++ {
			model.Step()
		}
		Expect(model.Grid().Occupants()).To(Equal(50))
	})

	It("drifts toward inequality over time", func() {
		for i := 0; i < 300; i++ {
			model.Step()
		}
		// With 50 agents on a 10x10 torus, 300 steps of random
		// exchange reliably spreads the distribution out.
		Expect(wealth.GiniOf(model.Wealths())).To(BeNumerically(">", 0.1))
	})

	It("never drives an agent below zero wealth", func() {
		for i := 0; i < 100; i++ {
			model.Step()
		}
		for _, a := range model.Agents() {
			Expect(a.(*wealth.Agent).Wealth()).To(BeNumerically(">=", 0))
		}
	})
})
