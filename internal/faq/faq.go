// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

// Package faq answers common product questions offline.
//
// The matcher scores an incoming question against a fixed catalog with the
// Sørensen–Dice bigram similarity and returns the canned answer of the
// best-scoring entry when it clears the confidence threshold. Matching is
// deterministic: the same input always yields the same answer, and ties go
// to the earlier catalog entry.
package faq

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Fallback is returned when no catalog entry scores above the threshold.
const Fallback = "Sorry, I don't have an answer for that. Please contact support for further assistance."

// Greeting opens every support conversation.
const Greeting = "Hi! How can I assist you with Qryptify today?"

// defaultThreshold is the minimum similarity a catalog question must score
// for its answer to be returned. Scores at or below it fall through.
const defaultThreshold = 0.4

// Entry is one catalog question with its canned answer.
type Entry struct {
	Question string
	Answer   string
}

// Match is a scored catalog hit.
type Match struct {
	Entry Entry
	Score float64
}

// Matcher scores questions against the catalog. Safe for concurrent use.
type Matcher struct {
	entries   []Entry
	metric    *metrics.SorensenDice
	threshold float64
}

// NewMatcher returns a Matcher over the built-in catalog.
func NewMatcher() *Matcher {
	return &Matcher{
		entries:   catalog,
		metric:    metrics.NewSorensenDice(),
		threshold: defaultThreshold,
	}
}

// BestMatch returns the highest-scoring catalog entry for question,
// regardless of threshold. Ties keep the earliest entry.
func (m *Matcher) BestMatch(question string) Match {
	question = strings.TrimSpace(question)

	var best Match
	for _, e := range m.entries {
		score := strutil.Similarity(question, e.Question, m.metric)
		if score > best.Score {
			best = Match{Entry: e, Score: score}
		}
	}
	return best
}

// Reply returns the canned answer for question when the best catalog match
// clears the confidence threshold, along with true. Otherwise it returns
// [Fallback] and false.
func (m *Matcher) Reply(question string) (string, bool) {
	if strings.TrimSpace(question) == "" {
		return Fallback, false
	}

	best := m.BestMatch(question)
	if best.Score > m.threshold {
		return best.Entry.Answer, true
	}
	return Fallback, false
}

var catalog = []Entry{
	{
		Question: "What types of encrypted data can Qryptify analyze?",
		Answer:   "Qryptify can analyze encrypted files, network traffic, cryptographic keys, and digital signatures, including classical and post-quantum encryption.",
	},
	{
		Question: "How accurate is the AI algorithm detection?",
		Answer:   "Our AI achieves 85% accuracy in cryptographic algorithm identification, continually improved by new encryption data.",
	},
	{
		Question: "Is my data secure during analysis?",
		Answer:   "All data is processed in secure isolated environments with end-to-end encryption, and results are recorded on the blockchain. Data is never stored.",
	},
	{
		Question: "Can I integrate Qryptify with my existing systems?",
		Answer:   "Qryptify is designed as a standalone platform without direct integration to ensure maximum security and prevent dependency risks.",
	},
	{
		Question: "What encryption algorithms does Qryptify support?",
		Answer:   "Supports RSA, AES, Kyber, ECDSA, and evolving algorithms detected by AI.",
	},
	{
		Question: "How long does analysis take?",
		Answer:   "Analysis times vary depending on data size, usually completing within seconds to a few minutes.",
	},
	{
		Question: "Can Qryptify detect unknown or custom algorithms?",
		Answer:   "Our AI primarily identifies known classical and post-quantum algorithms and learns continuously from new data.",
	},
	{
		Question: "Does Qryptify store my encrypted data?",
		Answer:   "No, Qryptify processes data temporarily with strict privacy protocols and never stores raw encrypted data.",
	},
	{
		Question: "How is blockchain used in Qryptify?",
		Answer:   "Every analysis result is securely recorded on blockchain to ensure transparency, traceability, and tamper-proof audit trails.",
	},
	{
		Question: "How do I start using Qryptify?",
		Answer:   "Sign up, upload your encrypted data, and let our AI analyze the cryptographic algorithms instantly.",
	},
	{
		Question: "Is Qryptify suitable for enterprise use?",
		Answer:   "Yes, Qryptify offers high security and accurate analysis suited for enterprise cryptography compliance and security audits.",
	},
	{
		Question: "What is post-quantum cryptography?",
		Answer:   "Encryption designed to be secure against attacks from quantum computers, included in Qryptify’s supported algorithms.",
	},
	{
		Question: "Can I trust AI analysis over manual cryptography methods?",
		Answer:   "Qryptify’s AI combines machine learning with expert knowledge to deliver reliable and fast analysis.",
	},
	{
		Question: "How often is Qryptify updated?",
		Answer:   "Our AI models and databases are regularly updated to include new algorithms and latest research.",
	},
	{
		Question: "What platforms support Qryptify?",
		Answer:   "Qryptify is accessible via modern web browsers with cloud-based backend processing.",
	},
	{
		Question: "Is there a free trial available?",
		Answer:   "Yes, new users can try Qryptify with limited features before subscribing.",
	},
	{
		Question: "Who can I contact for support?",
		Answer:   "You can contact support through live chat or the contact section on the website.",
	},
	{
		Question: "Does Qryptify comply with data protection regulations?",
		Answer:   "Yes, we ensure compliance with GDPR, CCPA, and other major data privacy laws.",
	},
	{
		Question: "Can Qryptify analyze encrypted communications in real-time?",
		Answer:   "Yes, Qryptify supports real-time cryptographic analysis of network data streams.",
	},
	{
		Question: "What should I do if I encounter issues using Qryptify?",
		Answer:   "Report issues via live chat or support email, and our expert team will assist promptly.",
	},
}
