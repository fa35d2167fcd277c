// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

// Package assistant provides the conversational Qryptify advisor backed by
// Google's Gemini API. It holds the running conversation, pins a product
// knowledge base into the system instruction, and caps every reply at six
// lines so the advisor stays terse in a terminal.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/qryptify/qryptify-client/internal/config"
)

// maxReplyLines is the hard cap applied to every advisor reply, mirrored
// in the system instruction and enforced again on the returned text.
const maxReplyLines = 6

// ErrorReply is shown when the model cannot be reached.
const ErrorReply = "There was an error reaching Qryptify AI. Please check your API key and network."

const emptyReply = "Sorry, I could not generate a response."

const knowledgeBase = `
PROJECT OVERVIEW
- Qryptify is an AI-driven cryptographic algorithm detection platform with blockchain auditing.
- It analyzes ciphertext or encrypted network traffic to identify the underlying cryptographic algorithm, including classical, modern, and selected post-quantum schemes.
- It is designed as a defense tool against ransomware and encryption misuse, supporting digital forensics, compliance, and risk assessment.

CORE FEATURES
- Detects algorithms such as AES, DES, RSA, Blowfish and post-quantum algorithms like Kyber, based on statistical features of ciphertext.
- Uses NIST Statistical Test Suite (STS) metrics (entropy, frequency, runs, serial correlation, etc.) to turn ciphertext into feature vectors.
- Classifies algorithms with a machine learning model (XGBoost, with future extension to CNN) and outputs:
  - algorithm name
  - algorithm category (classical / modern / post-quantum)
  - confidence score.
- Stores hashes of predictions and reports on a blockchain audit layer to ensure tamper-proof, traceable logs for forensic and regulatory use.
- Implements Role-Based Access Control (RBAC) so only authorized cybersecurity professionals and auditors can access analysis features.

USE CASES
- Ransomware investigation when only ciphertext is available (e.g., WannaCry, healthcare attacks, LCRYX).
- Compliance and audits that require immutable logs of encryption analysis.
- Planning migration from legacy algorithms to post-quantum cryptography.

LIMITATIONS & FUTURE WORK
- Accuracy depends on good ciphertext datasets, especially for post-quantum algorithms.
- Full NIST STS is computationally heavy; real-time streaming is a planned enhancement.
- Future work: CNN models, live network traffic, richer dashboards, and tighter AI-blockchain integration.
`

var systemInstruction = fmt.Sprintf(`
You are Qryptify AI, the official assistant for the Qryptify platform.

Use the following Qryptify documentation to answer user questions:
%s

INSTRUCTIONS
- When the user asks about Qryptify (features, modules, tech stack, architecture, use cases, limitations, future work), answer using this documentation.
- Explain concepts in clear, simple language suitable for students, security engineers, and non-experts.
- If the user asks something not defined, clearly say that detail is not specified instead of guessing.
- For general cryptography or security questions, you may answer normally but, where relevant, relate the explanation back to how Qryptify works.
- Keep answers concise: respond in 5-6 short lines maximum, unless the user explicitly asks for a longer, very detailed answer.
- Avoid bullet lists unless the user asks for them; prefer 5-6 plain text lines.
`, knowledgeBase)

// Assistant is a stateful conversation with the Qryptify advisor model.
// Safe for concurrent use, though replies are serialized.
type Assistant struct {
	client *genai.Client
	model  string

	mu      sync.Mutex
	history []*genai.Content
}

// New creates an Assistant from cfg. The API key is required; it is read
// from configuration and never embedded in the binary.
func New(ctx context.Context, cfg config.ClientAssistant) (*Assistant, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("assistant API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Assistant{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Ask sends question to the model with the full conversation so far and
// returns the advisor's reply, hard-trimmed to six lines. The exchange is
// appended to the conversation only on success, so a failed turn can be
// retried verbatim.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("empty question")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	contents := make([]*genai.Content, 0, len(a.history)+1)
	contents = append(contents, a.history...)
	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		// Small output cap so the model cannot write essays.
		MaxOutputTokens: 150,
		Temperature:     genai.Ptr[float32](0.5),
		TopP:            genai.Ptr[float32](1),
	})
	if err != nil {
		return "", fmt.Errorf("generate advisor reply: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		reply = emptyReply
	}
	reply = trimToLines(reply, maxReplyLines)

	a.history = append(contents, genai.NewContentFromText(reply, genai.RoleModel))
	return reply, nil
}

// Reset drops the accumulated conversation.
func (a *Assistant) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// trimToLines keeps at most max non-blank lines of text.
func trimToLines(text string, max int) string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) <= max {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(strings.Join(lines[:max], "\n"))
}
