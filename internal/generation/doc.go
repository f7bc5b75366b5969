// Package generation defines the boundary between the document commands and
// the hosted generative model. It declares the chat interfaces the Document
// Generator drives and the error taxonomy adapters translate remote failures
// into, so that the rest of the application never depends on the Gemini SDK.
package generation
