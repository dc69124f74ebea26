// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/spamclassifier.go -package=mocks . SpamClassifier,ConcurrentSpamClassifier
package domain

type LearnType string

const (
	LearnSpam = LearnType("spam")
	LearnHam  = LearnType("ham")
)

const (
	ClassSpam  = "Spam/Junk"
	ClassValid = "Valid"
	ClassError = "Error"
)

type SpamAnalysisResult struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Reason         string  `json:"reason"`
	Score          float64 `json:"-"`
	Error          error   `json:"-"`
}

func (r *SpamAnalysisResult) IsSpam() bool {
	return r != nil && r.Classification == ClassSpam
}

type SpamClassifier interface {
	Classify(rawMail []byte) *SpamAnalysisResult
	Learn(learnType LearnType, rawMail []byte) error
}

type ConcurrentSpamClassifier interface {
	ClassifyAll(mails [][]byte, concurrency int) []*SpamAnalysisResult
	LearnAll(learnType LearnType, mails [][]byte, concurrency int) []error
}
