// SPDX-License-Identifier: GPL-3.0-or-later
package spamassassin

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/CrawX/go-nimbusrelay/classifier"
	"github.com/CrawX/go-nimbusrelay/domain"

	"github.com/teamwork/spamc"
)

const (
	SpamAssassinTimeout = 20 * time.Second
	// spamd's default required_score
	DefaultRequiredScore = 5.0
)

type SpamAssassin struct {
	client        *spamc.Client
	requiredScore float64
}

func NewSpamassassin(host string, requiredScore float64) (*SpamAssassin, error) {
	if requiredScore <= 0 {
		requiredScore = DefaultRequiredScore
	}

	client := spamc.New(host, &net.Dialer{
		Timeout: SpamAssassinTimeout,
	})
	err := client.Ping(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("could not ping SpamAssassin: %w", err)
	}

	return &SpamAssassin{client: client, requiredScore: requiredScore}, nil
}

func (sa *SpamAssassin) Classify(rawMail []byte) *domain.SpamAnalysisResult {
	out, err := sa.client.Process(context.TODO(), bytes.NewReader(rawMail), nil)
	if err != nil {
		return classifier.ErrResult(fmt.Errorf("could not check SpamAssassin: %w", err))
	}

	err = out.Message.Close()
	if err != nil {
		return classifier.ErrResult(fmt.Errorf("could not close response: %w", err))
	}

	return classifier.Result(
		out.IsSpam,
		out.Score,
		sa.requiredScore,
		fmt.Sprintf("SpamAssassin score %.1f (required %.1f)", out.Score, sa.requiredScore),
	)
}

func (sa *SpamAssassin) Learn(learnType domain.LearnType, rawMail []byte) error {
	header := spamc.Header{}.Set("Set", "local")
	switch learnType {
	case domain.LearnSpam:
		header = header.Set("Message-class", "spam")
	case domain.LearnHam:
		header = header.Set("Message-class", "ham")
	default:
		return fmt.Errorf("unsupported learn type %v", learnType)
	}

	_, err := sa.client.Tell(context.TODO(), bytes.NewReader(rawMail), header)
	if err != nil {
		return fmt.Errorf("could not learn SpamAssassin: %w", err)
	}
	return nil
}
