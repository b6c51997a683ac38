package typist_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/typist/internal/anim"
	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/term"
	"github.com/san-kum/typist/internal/typist"
)

var _ = Describe("Sequencer", func() {
	var (
		clock  *anim.Virtual
		region *term.Region
		seq    *typist.Sequencer
	)

	flush := func() time.Duration {
		start := clock.Elapsed()
		seq.Start()
		Expect(clock.RunUntil(seq.Queue().Idle, time.Hour)).To(BeTrue())
		return clock.Elapsed() - start
	}

	BeforeEach(func() {
		clock = anim.NewVirtual()
		region = term.NewRegion(4)
		seq = typist.New(region, clock, typist.DefaultOptions())
	})

	AfterEach(func() {
		seq.Close()
	})

	Context("playing the greeting", func() {
		BeforeEach(func() {
			seq.Play([]typist.Operation{
				typist.Prompt{Kind: term.H1},
				typist.Type{Text: "> "},
				typist.Wait{Duration: time.Second},
				typist.Type{Text: "Hi !"},
			})
		})

		It("takes 1240ms of simulated time", func() {
			Expect(flush()).To(Equal(1240 * time.Millisecond))
		})

		It("leaves one heading with the text and the cursor", func() {
			flush()
			Expect(region.Lines()).To(HaveLen(1))
			Expect(region.Text()).To(Equal("> Hi !"))
			Expect(term.HTML(region)).To(HaveSuffix(`<span class="cursor">|</span></h1>`))
		})

		It("reveals one character per delay", func() {
			seq.Start()
			clock.Advance(1080*time.Millisecond + 50*time.Millisecond)
			Expect(region.Text()).To(Equal("> Hi"))
		})
	})

	Context("typing a link", func() {
		It("produces one anchor with the url and text", func() {
			seq.Prompt(term.H1, "").Link("click", "http://example.com", nil)
			flush()
			Expect(term.HTML(region)).To(ContainSubstring(`<a href="http://example.com">click</a>`))
		})
	})

	Context("hiding the cursor", func() {
		It("removes every cursor glyph", func() {
			seq.Prompt(term.H1, "").Type("done").HideCursor()
			flush()
			Expect(region.CursorCount()).To(BeZero())
			Expect(seq.Cursor()).To(BeNil())
		})
	})

	Context("running a preset screenplay", func() {
		It("ends on an empty prompt", func() {
			ops, err := typist.Compile(config.GetPreset("intern").Script)
			Expect(err).NotTo(HaveOccurred())
			seq.Play(ops)
			flush()

			lines := region.Lines()
			Expect(lines).To(HaveLen(4))
			Expect(region.Text()).To(HaveSuffix("\n> "))
			Expect(region.CursorCount()).To(Equal(1))
			Expect(region.ScrollTop()).To(BeNumerically(">", 0))
		})

		It("rejects an unknown operation", func() {
			_, err := typist.Compile([]config.Step{{Op: "explode"}})
			Expect(err).To(MatchError(typist.ErrUnknownOperation))
		})
	})
})
