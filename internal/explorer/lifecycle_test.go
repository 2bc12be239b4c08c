package explorer

import (
	"context"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/san-kum/rhythmlab/internal/logging"
)

var _ = ginkgo.Describe("Explorer lifecycle", func() {
	var (
		ex     *Explorer
		params Params
	)

	ginkgo.BeforeEach(func() {
		ex = New(WithLogger(logging.Discard()), WithYieldEvery(1), WithYieldPause(time.Millisecond))
		params = Params{MinSides: 3, MaxSides: 16, MaxCombinationSize: 3, Target: TargetAll}
	})

	ginkgo.It("starts idle with no results", func() {
		st := ex.State()
		gomega.Expect(st.Status).To(gomega.Equal(StatusIdle))
		gomega.Expect(st.Results).To(gomega.BeEmpty())
		gomega.Expect(ex.Progress()).To(gomega.BeZero())
	})

	ginkgo.It("reports running while a run is in flight and stops on request", func() {
		done := make(chan error, 1)
		go func() {
			_, err := ex.ExploreAllCombinations(context.Background(), params)
			done <- err
		}()

		gomega.Eventually(ex.IsRunning).Should(gomega.BeTrue())
		gomega.Eventually(ex.Progress).Should(gomega.BeNumerically(">", 0))

		_, err := ex.ExploreAllCombinations(context.Background(), params)
		gomega.Expect(err).To(gomega.MatchError(ErrRunning))

		ex.Stop()
		gomega.Eventually(done).Should(gomega.Receive(gomega.BeNil()))

		st := ex.State()
		gomega.Expect(st.Status).To(gomega.Equal(StatusStopped))
		gomega.Expect(st.CurrentCombination).To(gomega.BeNumerically("<", st.TotalCombinations))

		frozen := len(ex.Results())
		gomega.Consistently(func() int { return len(ex.Results()) }, "20ms").Should(gomega.Equal(frozen))
	})

	ginkgo.It("returns partial results and the context error on cancel", func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := ex.ExploreAllCombinations(ctx, params)
			done <- err
		}()

		gomega.Eventually(func() int { return ex.State().CurrentCombination }).Should(gomega.BeNumerically(">", 5))
		cancel()

		var err error
		gomega.Eventually(done).Should(gomega.Receive(&err))
		gomega.Expect(err).To(gomega.MatchError(context.Canceled))
		gomega.Expect(ex.State().Status).To(gomega.Equal(StatusStopped))
	})

	ginkgo.It("discards a running search on reset", func() {
		done := make(chan error, 1)
		go func() {
			_, err := ex.ExploreAllCombinations(context.Background(), params)
			done <- err
		}()
		gomega.Eventually(ex.IsRunning).Should(gomega.BeTrue())

		ex.Reset()
		gomega.Eventually(done).Should(gomega.Receive())

		st := ex.State()
		gomega.Expect(st.Status).To(gomega.Equal(StatusIdle))
		gomega.Expect(st.Results).To(gomega.BeEmpty())
		gomega.Expect(st.CurrentCombination).To(gomega.BeZero())
	})

	ginkgo.It("completes and can run again", func() {
		small := Params{MinSides: 3, MaxSides: 5, MaxCombinationSize: 2, Target: TargetAll}
		first, err := ex.ExploreAllCombinations(context.Background(), small)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(ex.Progress()).To(gomega.Equal(100.0))

		second, err := ex.ExploreAllCombinations(context.Background(), small)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(second).To(gomega.HaveLen(len(first)))
	})
})
