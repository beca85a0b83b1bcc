//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"
)

const (
	formID     = "prompt-form"
	inputID    = "prompt-input"
	submitID   = "submit-button"
	responseID = "response-area"
	loadingID  = "loading-indicator"
)

// domView binds form.View to the page elements by id.
type domView struct {
	window   js.Value
	form     js.Value
	input    js.Value
	submit   js.Value
	response js.Value
	loading  js.Value

	listener js.Func
}

func newDOMView(doc js.Value) (*domView, error) {
	v := &domView{window: js.Global()}
	for id, dst := range map[string]*js.Value{
		formID:     &v.form,
		inputID:    &v.input,
		submitID:   &v.submit,
		responseID: &v.response,
		loadingID:  &v.loading,
	} {
		el := doc.Call("getElementById", id)
		if el.IsNull() || el.IsUndefined() {
			return nil, fmt.Errorf("element #%s not found", id)
		}
		*dst = el
	}
	return v, nil
}

func (v *domView) PromptValue() string {
	return v.input.Get("value").String()
}

func (v *domView) Alert(message string) {
	v.window.Call("alert", message)
}

func (v *domView) SetSubmitEnabled(enabled bool) {
	v.submit.Set("disabled", !enabled)
}

func (v *domView) SetLoading(visible bool) {
	display := "none"
	if visible {
		display = "block"
	}
	v.loading.Get("style").Set("display", display)
}

func (v *domView) SetResponseText(text string) {
	v.response.Set("textContent", text)
}

func (v *domView) SetResponseHTML(markup string) {
	v.response.Set("innerHTML", markup)
}

// OnSubmit stops the native navigation and runs handler off the event loop,
// which must not block on the network.
func (v *domView) OnSubmit(handler func()) {
	v.listener = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go handler()
		return nil
	})
	v.form.Call("addEventListener", "submit", v.listener)
}
