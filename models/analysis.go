package models

import "time"

// AnalysisReport is the classification result returned by
// analyze-input-file. The backend derives NIST STS feature vectors
// from the uploaded ciphertext and runs them through its model; the
// client passes the result through without re-validation.
type AnalysisReport struct {
	// Algorithm is the detected cryptographic algorithm name
	// (e.g. "AES", "RSA", "Kyber").
	Algorithm string `json:"predicted_algorithm"`

	// Confidence is the model confidence score in percent (0-100).
	Confidence float64 `json:"predicted_algorithm_confidence_score"`

	// Category is the algorithm family (classical / modern /
	// post-quantum) when the backend provides one.
	Category string `json:"predicted_algorithm_category,omitempty"`
}

// AnalysisRecord is a locally persisted history entry for one
// completed analysis.
type AnalysisRecord struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"file_name"`
	Algorithm  string    `json:"algorithm"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}
