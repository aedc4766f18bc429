package domain

import (
	"context"
	"errors"
	"testing"
)

func TestAwait(t *testing.T) {
	expecteds := Posts{{UserID: 1, ID: 1, Title: "One", Body: "one"}}
	actuals, err := Await(context.Background(), Deliver(Result{Posts: expecteds}))
	if err != nil {
		t.Fatalf("unexpected error by Await: got %s, expect <nil>\n", err)
	}
	if len(actuals) != 1 || actuals[0] != expecteds[0] {
		t.Errorf("unexpected posts by Await: got %v, expect %v\n", actuals, expecteds)
	}
}

func TestAwaitFailure(t *testing.T) {
	expected := DecodeError(errors.New("invalid payload"))
	ps, err := Await(context.Background(), Deliver(Result{Err: expected}))
	if err != expected {
		t.Errorf("unexpected error by Await: got %v, expect %s\n", err, expected)
	}
	if ps != nil {
		t.Errorf("unexpected posts by Await: got %v, expect <nil>\n", ps)
	}
}

func TestAwaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Await(ctx, make(chan Result)); err != context.Canceled {
		t.Errorf("unexpected error by Await: got %v, expect %s\n", err, context.Canceled)
	}
}

func TestAwaitClosed(t *testing.T) {
	ch := make(chan Result)
	close(ch)

	if _, err := Await(context.Background(), ch); err == nil {
		t.Errorf("unexpected success of Await with closed channel: expect error\n")
	}
}

func TestDeliver(t *testing.T) {
	ch := Deliver(Result{})
	if _, ok := <-ch; !ok {
		t.Fatalf("unexpected closed channel by Deliver: expect a result\n")
	}
	if _, ok := <-ch; ok {
		t.Errorf("unexpected second result by Deliver: expect closed channel\n")
	}
}

func TestAwaitDeliveredAfterCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	expected := TransportError(context.DeadlineExceeded)
	for i := 0; i < 100; i++ {
		if _, err := Await(ctx, Deliver(Result{Err: expected})); err != expected {
			t.Fatalf("unexpected error by Await: got %v, expect %s\n", err, expected)
		}
	}
}
