package model

import "testing"

func TestCycleDetector(t *testing.T) {
	d := NewCycleDetector(0)

	b := boardFromRows(
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)
	if d.Observe(b) {
		t.Fatal("first generation reported as stagnant")
	}
	b = b.Next()
	if d.Observe(b) {
		t.Fatal("second generation reported as stagnant")
	}
	b = b.Next()
	if !d.Observe(b) {
		t.Fatal("blinker period was not detected")
	}

	d.Reset()
	if d.Observe(b) {
		t.Fatal("detector remembered history after Reset")
	}
}

func TestCycleDetectorForgetsOldGenerations(t *testing.T) {
	d := NewCycleDetector(1)
	a := boardFromRows("O.", "..")
	b := boardFromRows(".O", "..")

	d.Observe(a)
	d.Observe(b)
	if d.Observe(a) {
		t.Fatal("depth 1 detector should only match the previous generation")
	}
	if !d.Observe(a) {
		t.Fatal("still life was not detected")
	}
}
