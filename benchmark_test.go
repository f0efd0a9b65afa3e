package errdomain_test

import (
	"fmt"
	"testing"

	"github.com/jmgilman/go/errdomain"
)

func BenchmarkTagOf(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errdomain.TagOf("github.com/jmgilman/go/errdomain.ResultCode")
	}
}

func BenchmarkMake(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errdomain.Make(errcFailure)
	}
}

// BenchmarkLookup measures the lock-free read path.
func BenchmarkLookup(b *testing.B) {
	r := errdomain.NewRegistry()
	for i := range 32 {
		r.Register(errdomain.TagOf(fmt.Sprintf("bench.%d", i)), errdomain.NewCategory("bench", nil))
	}
	tag := errdomain.TagOf("bench.7")

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = r.Lookup(tag)
		}
	})
}

func BenchmarkRegister(b *testing.B) {
	tags := make([]errdomain.Tag, b.N)
	for i := range tags {
		tags[i] = errdomain.TagOf(fmt.Sprintf("bench.register.%d", i))
	}
	c := errdomain.NewCategory("bench", nil)
	r := errdomain.NewRegistry()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Register(tags[i], c)
	}
}

func BenchmarkFormat(b *testing.B) {
	r := errdomain.NewRegistry()
	r.Register(oneTag, errdomain.NewCategory("core", coreMessages))
	e := errdomain.FromTag(oneTag, 0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = r.Format(e)
	}
}

func BenchmarkPack(b *testing.B) {
	e := errdomain.FromTag(0xDEADBEEF, 16)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errdomain.Pack(e)
	}
}

func BenchmarkParse(b *testing.B) {
	r := errdomain.NewRegistry()
	r.Register(oneTag, errdomain.NewCategory("core", coreMessages))
	text := " 82AFFE53: 00000000\r\n"

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = r.Parse(text)
	}
}

func BenchmarkResult(b *testing.B) {
	e := errdomain.FromTag(0xDEADBEEF, 1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r := errdomain.Ok(i)
		r.SetErr(e)
		_ = r.Err()
	}
}
