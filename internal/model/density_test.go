package model

import (
	"reflect"
	"testing"
)

func TestDefaultDensityList(t *testing.T) {
	list := DefaultDensityList()
	want := []float64{35, 50, 75, 100, 125, 150, 175, 200}
	if !reflect.DeepEqual(list.Densities(), want) {
		t.Errorf("expected %v, got %v", want, list.Densities())
	}
	for _, e := range list {
		if e.Pack.Mode != PackModeAuto || e.Pack.ManualCount != 1 {
			t.Errorf("density %v should default to auto/1, got %+v", e.Density, e.Pack)
		}
	}
}

func TestDensityListAddRejectsDuplicates(t *testing.T) {
	list := DefaultDensityList()
	before := list.Clone()

	if err := list.Add(50); err == nil {
		t.Fatal("expected duplicate rejection")
	}
	if !reflect.DeepEqual(list, before) {
		t.Error("rejected Add must leave the list unchanged")
	}
}

func TestDensityListAddRejectsNonPositive(t *testing.T) {
	list := DefaultDensityList()
	for _, d := range []float64{0, -10} {
		if err := list.Add(d); err == nil {
			t.Errorf("expected rejection of density %v", d)
		}
	}
	if len(list) != 8 {
		t.Errorf("list grew on rejected input, len=%d", len(list))
	}
}

func TestDensityListAddRemoveRoundTrip(t *testing.T) {
	list := DefaultDensityList()
	before := list.Clone()

	if err := list.Add(60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !list.Contains(60) {
		t.Fatal("expected 60 after Add")
	}
	if !list.Remove(60) {
		t.Fatal("expected Remove to report presence")
	}
	if !reflect.DeepEqual(list, before) {
		t.Error("add then remove must restore the prior list and settings exactly")
	}
}

func TestDensityListPreservesInsertionOrder(t *testing.T) {
	var list DensityList
	for _, d := range []float64{120, 40, 90} {
		if err := list.Add(d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	want := []float64{120, 40, 90}
	if !reflect.DeepEqual(list.Densities(), want) {
		t.Errorf("insertion order not preserved: %v", list.Densities())
	}
}

func TestDensityListSetPack(t *testing.T) {
	list := DefaultDensityList()
	setting := PackSetting{Mode: PackModeManual, ManualCount: 7}
	if err := list.SetPack(75, setting); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := list.Setting(75); got != setting {
		t.Errorf("expected %+v, got %+v", setting, got)
	}
	if err := list.SetPack(999, setting); err == nil {
		t.Error("expected error for unknown density")
	}
}

func TestDensityListSettingFallsBackToDefault(t *testing.T) {
	var list DensityList
	if got := list.Setting(42); got != DefaultPackSetting() {
		t.Errorf("expected default setting for untracked density, got %+v", got)
	}
}
