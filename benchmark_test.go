package fault

import (
	"context"
	"errors"
	"testing"
	"time"
)

func benchHandler() Handler[int, string] {
	return HandlerFunc[int, string](func(ctx context.Context, req int) (string, error) {
		return "ok", nil
	})
}

func BenchmarkErrorService_Call_NoFault(b *testing.B) {
	ctx := context.Background()
	errInjected := errors.New("injected")
	service := NewErrorLayer[int, string](0.0, func(int) error { return errInjected }).Apply(benchHandler())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.Call(ctx, i)
	}
}

func BenchmarkErrorService_Call_Fault(b *testing.B) {
	ctx := context.Background()
	errInjected := errors.New("injected")
	service := NewErrorLayer[int, string](1.0, func(int) error { return errInjected }).Apply(benchHandler())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.Call(ctx, i)
	}
}

func BenchmarkLatencyService_Call_NoFault(b *testing.B) {
	ctx := context.Background()
	layer, err := NewLatencyLayer[int, string](0.0, time.Millisecond, 2*time.Millisecond)
	if err != nil {
		b.Fatal(err)
	}
	service := layer.Apply(benchHandler())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.Call(ctx, i)
	}
}

func BenchmarkErrorService_Call_Parallel(b *testing.B) {
	ctx := context.Background()
	errInjected := errors.New("injected")
	service := NewErrorLayer[int, string](0.5, func(int) error { return errInjected }).Apply(benchHandler())

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			service.Call(ctx, 1)
		}
	})
}

func BenchmarkProbability_Decide(b *testing.B) {
	d := Probability[int](0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Decide(i)
	}
}
