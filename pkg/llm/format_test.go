package llm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pradyumna-dev/jarvis/pkg/llm"
)

var _ = Describe("FormatCodeBlocks", func() {
	It("wraps a fenced block with its language tag", func() {
		in := "Here you go:\n```go\nfmt.Println(1)\n```\nDone."
		out := llm.FormatCodeBlocks(in)
		Expect(out).To(Equal("Here you go:\n<pre><code class=\"language-go\">fmt.Println(1)</code></pre>\nDone."))
	})

	It("defaults the language to python", func() {
		out := llm.FormatCodeBlocks("```\nprint(1)\n```")
		Expect(out).To(Equal("<pre><code class=\"language-python\">print(1)</code></pre>"))
	})

	It("escapes HTML inside the code body", func() {
		out := llm.FormatCodeBlocks("```go\nif a < b && c > d {\n}\n```")
		Expect(out).To(ContainSubstring("if a &lt; b &amp;&amp; c &gt; d {"))
		Expect(out).ToNot(ContainSubstring("<b"))
	})

	It("rewrites every block and leaves prose alone", func() {
		in := "one\n```go\na\n```\ntwo\n```js\nb\n```\nthree"
		out := llm.FormatCodeBlocks(in)
		Expect(out).To(ContainSubstring("one\n<pre><code class=\"language-go\">a</code></pre>\ntwo"))
		Expect(out).To(ContainSubstring("<pre><code class=\"language-js\">b</code></pre>\nthree"))
	})

	It("passes text without fences through untouched", func() {
		Expect(llm.FormatCodeBlocks("just words")).To(Equal("just words"))
	})
})
