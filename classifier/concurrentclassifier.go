// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"
	"github.com/sirupsen/logrus"
)

// GoRoutineSpamClassifier fans a single classifier out over a bounded number of goroutines. Every failed
// classification or learn call is retried once.
type GoRoutineSpamClassifier struct {
	domain.SpamClassifier
}

func (grsc *GoRoutineSpamClassifier) ClassifyAll(mails [][]byte, concurrency int) []*domain.SpamAnalysisResult {
	if concurrency < 1 {
		concurrency = 1
	}

	semaphore := make(chan bool, concurrency)
	results := make([]*domain.SpamAnalysisResult, len(mails))
	for i := 0; i < len(mails); i++ {
		semaphore <- true
		go func(index int) {
			results[index] = grsc.Classify(mails[index])
			if failed(results[index]) {
				results[index] = grsc.Classify(mails[index])
			}
			<-semaphore
		}(i)
	}

	for i := 0; i < concurrency; i++ {
		semaphore <- true
	}

	for i, result := range results {
		if result == nil {
			results[i] = ErrResult(nil)
		}
	}

	return results
}

func (grsc *GoRoutineSpamClassifier) LearnAll(learnType domain.LearnType, mails [][]byte, concurrency int) []error {
	if concurrency < 1 {
		concurrency = 1
	}

	semaphore := make(chan bool, concurrency)
	results := make([]error, len(mails))
	for i := 0; i < len(mails); i++ {
		semaphore <- true
		go func(index int) {
			results[index] = grsc.Learn(learnType, mails[index])
			if results[index] != nil {
				results[index] = grsc.Learn(learnType, mails[index])
			}
			<-semaphore
		}(i)
	}

	for i := 0; i < concurrency; i++ {
		semaphore <- true
	}

	return results
}

func failed(result *domain.SpamAnalysisResult) bool {
	return result == nil || result.Error != nil || result.Classification == domain.ClassError
}

// ErrResult is the result reported for a mail that could not be classified at all.
func ErrResult(err error) *domain.SpamAnalysisResult {
	reason := "classification failed"
	if err != nil {
		reason = err.Error()
	}
	return &domain.SpamAnalysisResult{
		Classification: domain.ClassError,
		Reason:         reason,
		Error:          err,
	}
}

// Confidence maps a classifier score onto 0..1 relative to the score at which the classifier reports spam.
func Confidence(score, required float64) float64 {
	if required <= 0 {
		if score > 0 {
			return 1
		}
		return 0
	}

	confidence := score / required
	switch {
	case confidence < 0:
		return 0
	case confidence > 1:
		return 1
	}
	return confidence
}

// Result builds a classification from a spam verdict and a score.
func Result(isSpam bool, score, required float64, reason string) *domain.SpamAnalysisResult {
	result := &domain.SpamAnalysisResult{
		Classification: domain.ClassValid,
		Score:          score,
		Reason:         reason,
	}
	confidence := Confidence(score, required)
	if isSpam {
		result.Classification = domain.ClassSpam
		result.Confidence = confidence
	} else {
		result.Confidence = 1 - confidence
	}

	log.Logger(log.LOG_CLASSIFIER).WithFields(logrus.Fields{
		"Classification": result.Classification,
		"Score":          score,
		"Required":       required,
	}).Debug("Classified mail")

	return result
}
