package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	// Prompts recibidos, para inspeccionar en tests.
	Systems []string
	Prompts []string
}

func (m *MockClient) Generate(_ context.Context, system, prompt string) (string, error) {
	m.Systems = append(m.Systems, system)
	m.Prompts = append(m.Prompts, prompt)
	return m.Response, m.Err
}
