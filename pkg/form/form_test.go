package form

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/curselect/internal/widget"
)

func newOrderForm(t *testing.T) *Form[string, string] {
	t.Helper()
	f := New[string, string](Config[string]{})
	if err := f.Add("color", Selector[string]{Label: "color", Options: []string{"red", "green", "blue"}, Default: Ptr(1)}); err != nil {
		t.Fatalf("add color: %v", err)
	}
	if err := f.Add("size", Selector[string]{Label: "size", Options: []string{"S", "M", "L"}}); err != nil {
		t.Fatalf("add size: %v", err)
	}
	if err := f.Add("extras", MultiSelector[string]{Label: "extras", Options: []string{"gift-wrap", "insurance"}}); err != nil {
		t.Fatalf("add extras: %v", err)
	}
	return f
}

func press(t *testing.T, s *session[string, string], keys ...widget.Key) widget.Control {
	t.Helper()
	ctrl := widget.Continue
	for i, key := range keys {
		if ctrl != widget.Continue {
			t.Fatalf("key %d (%s) sent after the session ended", i, key)
		}
		ctrl = s.Handle(key, 5)
	}
	return ctrl
}

func mustSingle(t *testing.T, res Result[string, string], field string) string {
	t.Helper()
	v, ok := res.Get(field)
	if !ok {
		t.Fatalf("field %s missing", field)
	}
	option, ok := v.Single()
	if !ok {
		t.Fatalf("field %s: expected single value, got %s", field, v.Kind())
	}
	return option
}

func TestConfirmImmediatelyKeepsDefaults(t *testing.T) {
	s := newOrderForm(t).start()
	if ctrl := press(t, s, widget.KeyPrevGroup, widget.KeyActivate); ctrl != widget.Confirm {
		t.Fatalf("expected confirm, got %s", ctrl)
	}
	res := s.result
	if res.Cancelled() {
		t.Fatalf("expected confirmed result")
	}
	if got := mustSingle(t, res, "color"); got != "green" {
		t.Fatalf("expected color green, got %s", got)
	}
	for _, field := range []string{"size", "extras"} {
		v, ok := res.Get(field)
		if !ok || !v.IsUnset() {
			t.Fatalf("expected %s unset, got %#v", field, v)
		}
	}
	if !reflect.DeepEqual(res.Fields(), []string{"color", "size", "extras"}) {
		t.Fatalf("unexpected field order %v", res.Fields())
	}
}

func TestSelectionsFlowIntoResult(t *testing.T) {
	s := newOrderForm(t).start()
	ctrl := press(t, s,
		widget.KeyNextGroup, widget.KeyDown, widget.KeyDown, widget.KeyActivate,
		widget.KeyNextGroup, widget.KeyActivate,
		widget.KeyNextGroup, widget.KeyActivate,
	)
	if ctrl != widget.Confirm {
		t.Fatalf("expected confirm, got %s", ctrl)
	}
	res := s.result
	if got := mustSingle(t, res, "color"); got != "green" {
		t.Fatalf("expected color green, got %s", got)
	}
	if got := mustSingle(t, res, "size"); got != "L" {
		t.Fatalf("expected size L, got %s", got)
	}
	extras, _ := res.Get("extras")
	if list, ok := extras.Multi(); !ok || !reflect.DeepEqual(list, []string{"gift-wrap"}) {
		t.Fatalf("expected extras [gift-wrap], got %#v", extras)
	}
}

func TestRadioSwitchKeepsOneSelection(t *testing.T) {
	s := newOrderForm(t).start()
	press(t, s, widget.KeyDown, widget.KeyDown, widget.KeyActivate)
	v, _ := s.state.Get("color")
	if got, _ := v.Single(); got != "blue" {
		t.Fatalf("expected blue, got %#v", v)
	}
	active := 0
	options := s.root.Children()[0].Children()[1].Children()
	for _, leaf := range options {
		if leaf.On() {
			active++
		}
	}
	if active != 1 || !options[2].On() {
		t.Fatalf("expected only blue active")
	}
}

func TestToggleOnOffLeavesEmptyList(t *testing.T) {
	s := newOrderForm(t).start()
	press(t, s, widget.KeyBottom, widget.KeyPrevGroup, widget.KeyActivate, widget.KeyActivate)
	v, _ := s.state.Get("extras")
	if v.IsUnset() {
		t.Fatalf("expected empty list, got unset")
	}
	if list, ok := v.Multi(); !ok || len(list) != 0 {
		t.Fatalf("expected empty list, got %#v", v)
	}
}

func TestCancelDiscardsSelections(t *testing.T) {
	for _, keys := range [][]widget.Key{
		{widget.KeyNextGroup, widget.KeyActivate, widget.KeyCancel},
		{widget.KeyNextGroup, widget.KeyActivate, widget.KeyBottom, widget.KeyActivate},
	} {
		s := newOrderForm(t).start()
		if ctrl := press(t, s, keys...); ctrl != widget.Cancel {
			t.Fatalf("expected cancel, got %s", ctrl)
		}
		if !s.result.Cancelled() {
			t.Fatalf("expected cancelled result")
		}
		if s.result.Map() != nil || len(s.result.Fields()) != 0 {
			t.Fatalf("cancelled result leaked selections: %v", s.result.Map())
		}
		if s.state != nil {
			t.Fatalf("expected state to be discarded")
		}
	}
}

func TestConfirmedEmptyFormDiffersFromCancel(t *testing.T) {
	f := New[string, string](Config[string]{})
	s := f.start()
	if ctrl := press(t, s, widget.KeyActivate); ctrl != widget.Confirm {
		t.Fatalf("expected OK to be focused on an empty form, got %s", ctrl)
	}
	if s.result.Cancelled() || s.result.Map() == nil {
		t.Fatalf("expected confirmed empty mapping")
	}
}

func TestResultIsFrozenAtConfirm(t *testing.T) {
	s := newOrderForm(t).start()
	press(t, s, widget.KeyPrevGroup, widget.KeyActivate)
	snapshot := s.result.Map()
	s.state.ApplySingle("color", "red")
	if got := mustSingle(t, s.result, "color"); got != "green" {
		t.Fatalf("result changed after confirm: %s", got)
	}
	if v, _ := snapshot["color"].Single(); v != "green" {
		t.Fatalf("map copy changed after confirm: %s", v)
	}
}

func TestAddRejectsInvalidDefaults(t *testing.T) {
	f := New[string, string](Config[string]{})
	cases := []Group[string]{
		Selector[string]{Options: []string{"a"}, Default: Ptr(1)},
		Selector[string]{Options: []string{"a"}, Default: Ptr(-1)},
		MultiSelector[string]{Options: []string{"a", "b"}, Defaults: []int{2}},
		MultiSelector[string]{Options: []string{"a", "b"}, Defaults: []int{1, 1}},
	}
	for i, group := range cases {
		err := f.Add("field", group)
		if !errors.Is(err, ErrInvalidDefault) {
			t.Fatalf("case %d: expected ErrInvalidDefault, got %v", i, err)
		}
	}
	if len(f.Fields()) != 0 {
		t.Fatalf("rejected groups must not be added")
	}
	if err := f.Add("field", Selector[string]{LeftMargin: Ptr(-1)}); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("expected ErrInvalidMargin, got %v", err)
	}
}

func TestAddReplacesKeepingPosition(t *testing.T) {
	f := newOrderForm(t)
	if err := f.Add("color", Selector[string]{Label: "colour", Options: []string{"cyan"}, Default: Ptr(0)}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !reflect.DeepEqual(f.Fields(), []string{"color", "size", "extras"}) {
		t.Fatalf("expected first position kept, got %v", f.Fields())
	}
	s := f.start()
	press(t, s, widget.KeyPrevGroup, widget.KeyActivate)
	if got := mustSingle(t, s.result, "color"); got != "cyan" {
		t.Fatalf("expected replacement group, got %s", got)
	}
}

func TestAddCopiesOptions(t *testing.T) {
	options := []string{"a", "b"}
	f := New[string, string](Config[string]{})
	if err := f.Add("x", Selector[string]{Options: options, Default: Ptr(0)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	options[0] = "mutated"
	s := f.start()
	v, _ := s.state.Get("x")
	if got, _ := v.Single(); got != "a" {
		t.Fatalf("expected copied options, got %s", got)
	}
}

func TestLayoutFollowsLabelWidth(t *testing.T) {
	f := New[string, string](Config[string]{})
	_ = f.Add("short", Selector[string]{Label: "size", Options: []string{"S"}})
	_ = f.Add("long", Selector[string]{Label: "a long label", Options: []string{"S"}, LabelOnTop: Ptr(false)})
	_ = f.Add("forced", Selector[string]{Label: "size", Options: []string{"S"}, LabelOnTop: Ptr(true), LeftMargin: Ptr(4)})
	s := f.start()
	groups := s.root.Children()

	inline := groups[0]
	if inline.Kind() != widget.KindHStack || inline.Children()[0].Width() != 6 || inline.Gap() != 2 {
		t.Fatalf("expected inline label column of width 6, got %s", inline.Kind())
	}
	if inline.Focus() != 1 {
		t.Fatalf("expected focus on the option column")
	}
	stacked := groups[2]
	if stacked.Kind() != widget.KindVStack || stacked.Children()[1].Indent() != 8 {
		t.Fatalf("expected long label stacked with indent 8, got %s", stacked.Kind())
	}
	forced := groups[4]
	if forced.Kind() != widget.KindVStack || forced.Children()[1].Indent() != 4 {
		t.Fatalf("expected override to stack with indent 4")
	}
}

func TestDisplayFuncInheritance(t *testing.T) {
	f := New[string, int](Config[int]{DisplayFunc: func(v int) string { return strings.Repeat("*", v) }})
	_ = f.Add("stars", Selector[int]{Label: "n", Options: []int{1, 2}})
	_ = f.Add("plain", MultiSelector[int]{Label: "m", Options: []int{3}, DisplayFunc: func(v int) string { return "three" }})
	s := f.start()
	groups := s.root.Children()
	if got := groups[0].Children()[1].Children()[1].Label(); got != "**" {
		t.Fatalf("expected form display func, got %q", got)
	}
	if got := groups[2].Children()[1].Children()[0].Label(); got != "three" {
		t.Fatalf("expected group display func, got %q", got)
	}
}

func TestMultiDefaultsKeepListedOrder(t *testing.T) {
	f := New[string, string](Config[string]{})
	_ = f.Add("tags", MultiSelector[string]{Options: []string{"a", "b", "c"}, Defaults: []int{2, 0}})
	s := f.start()
	v, _ := s.state.Get("tags")
	if list, _ := v.Multi(); !reflect.DeepEqual(list, []string{"c", "a"}) {
		t.Fatalf("expected [c a], got %v", list)
	}
	leaves := s.root.Children()[0].Children()[1].Children()
	if !leaves[0].On() || leaves[1].On() || !leaves[2].On() {
		t.Fatalf("expected default toggles checked")
	}
}

func TestRunDrivesTerminalInput(t *testing.T) {
	f := newOrderForm(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var out bytes.Buffer
	res, err := f.Run(ctx,
		WithInput(strings.NewReader("\t\r\t\t\r")),
		WithOutput(&out),
		WithSize(60, 20),
		WithAltScreen(false),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Cancelled() {
		t.Fatalf("expected confirmed result")
	}
	if got := mustSingle(t, res, "size"); got != "S" {
		t.Fatalf("expected size S, got %s", got)
	}
}
