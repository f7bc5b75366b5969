// Package gemini provides an implementation of the generation.ChatModel interface
// that uses Google's Gemini models through the google.golang.org/genai client.
//
// This package is an infrastructure adapter, connecting the document commands
// to Google's external generative AI service. It translates between plain
// strings and the SDK's content types without exposing the details of the
// external service to the rest of the application.
//
// Key components:
//
// 1. ChatModel:
//   - Implements the generation.ChatModel interface
//   - Builds the genai client for the Vertex AI or Gemini API backend
//   - Tags every request with the configured user agent
//
// 2. chatSession:
//   - Wraps one genai.Chat, whose history grows with every message
//   - Extracts the reply text from the first candidate
//
// 3. Error Handling:
//   - Translates SDK failures into generation.ErrGenerationFailed
//   - Maps safety blocks to generation.ErrContentBlocked
//   - Maps replies without text to generation.ErrInvalidResponse
//
// There is deliberately no retry logic: a failed call fails the command.
package gemini
