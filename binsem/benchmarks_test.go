package binsem

import (
	"testing"
)

func BenchmarkSignalWait(b *testing.B) {
	s := New(false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Signal()
		s.Wait()
	}
}

func BenchmarkHandoff(b *testing.B) {
	var (
		ping = New(false)
		pong = New(false)
	)

	go func() {
		for i := 0; i < b.N; i++ {
			ping.Wait()
			pong.Signal()
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ping.Signal()
		pong.Wait()
	}
}

func BenchmarkChannelHandoff(b *testing.B) {
	c := make(chan struct{}, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c <- struct{}{}
		<-c
	}
}
