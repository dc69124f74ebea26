// SPDX-License-Identifier: GPL-3.0-or-later
package rspamd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/CrawX/go-nimbusrelay/classifier"
	"github.com/CrawX/go-nimbusrelay/domain"
)

const (
	RspamdTimeout = 20 * time.Second
	noAction      = "no action"
	// symbols listed in the reason
	reasonSymbols = 3
)

// gathered via trial&error and the source-code of various rspamd modules. These are caused by misconfiguration on the
// sender's side and not by the dns server being slow to respond for example.
var okFailSymbols = regexp.MustCompile(`^(R_DKIM_PERMFAIL|DMARC_POLICY_SOFTFAIL|R_SPF_SOFTFAIL|DMARC_DNSFAIL|R_SPF_FAIL)$`)

type Rspamd struct {
	client   *http.Client
	host     string
	password string
}

func NewRspamd(host, password string) (*Rspamd, error) {
	rspamd := &Rspamd{
		client: &http.Client{
			Timeout: RspamdTimeout,
		},
		host:     strings.TrimSuffix(host, "/"),
		password: password,
	}
	err := rspamd.Ping()
	if err != nil {
		return nil, fmt.Errorf("could not ping rspamd: %w", err)
	}

	return rspamd, nil
}

func (rs *Rspamd) Ping() error {
	resp, err := rs.client.Get(rs.host + "/ping")
	if err != nil {
		return fmt.Errorf("could not ping rspamd: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from rspamd, expected 200", resp.StatusCode)
	}

	return nil
}

type symbol struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type checkResponse struct {
	IsSkipped     bool              `json:"is_skipped"`
	Score         float64           `json:"score"`
	RequiredScore float64           `json:"required_score"`
	Symbols       map[string]symbol `json:"symbols"`
	Action        string            `json:"action"`
}

func (rs *Rspamd) Classify(rawMail []byte) *domain.SpamAnalysisResult {
	req, err := http.NewRequest(http.MethodPost, rs.host+"/checkv2", bytes.NewReader(rawMail))
	if err != nil {
		return classifier.ErrResult(fmt.Errorf("could not create check request: %w", err))
	}

	resp, err := rs.doAuthenticated(req)
	if err != nil {
		return classifier.ErrResult(fmt.Errorf("could not perform check request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return classifier.ErrResult(fmt.Errorf("unexpected status %d from rspamd, expected 200", resp.StatusCode))
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return classifier.ErrResult(fmt.Errorf("could not read rspamd response: %w", err))
	}

	checkResponse := &checkResponse{}
	err = json.Unmarshal(body, checkResponse)
	if err != nil {
		return classifier.ErrResult(fmt.Errorf("could not deserialize rspamd response: %w", err))
	}

	if checkResponse.IsSkipped {
		return classifier.ErrResult(fmt.Errorf("rspamd skipped the message"))
	}

	if len(checkResponse.Symbols) == 0 {
		return classifier.ErrResult(fmt.Errorf("could not find any symbols in rspamd response"))
	}

	for symbol := range checkResponse.Symbols {
		if strings.HasSuffix(symbol, "FAIL") && !okFailSymbols.MatchString(symbol) {
			return classifier.ErrResult(fmt.Errorf("unexpected FAIL symbol %s in rspamd response", symbol))
		}
	}

	return classifier.Result(
		checkResponse.Action != noAction,
		checkResponse.Score,
		checkResponse.RequiredScore,
		reason(checkResponse),
	)
}

// reason names the action and the highest scoring symbols
func reason(resp *checkResponse) string {
	names := make([]string, 0, len(resp.Symbols))
	for name := range resp.Symbols {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := resp.Symbols[names[i]].Score, resp.Symbols[names[j]].Score
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})
	if len(names) > reasonSymbols {
		names = names[:reasonSymbols]
	}

	return fmt.Sprintf("rspamd %s, score %.2f/%.2f (%s)", resp.Action, resp.Score, resp.RequiredScore, strings.Join(names, ", "))
}

func (rs *Rspamd) Learn(learnType domain.LearnType, rawMail []byte) error {
	suffix := ""
	switch learnType {
	case domain.LearnSpam:
		suffix = "learnspam"
	case domain.LearnHam:
		suffix = "learnham"
	default:
		return fmt.Errorf("unsupported learn type %v", learnType)
	}

	req, err := http.NewRequest(http.MethodPost, rs.host+"/"+suffix, bytes.NewReader(rawMail))
	if err != nil {
		return fmt.Errorf("could not create learn request: %w", err)
	}

	resp, err := rs.doAuthenticated(req)
	if err != nil {
		return fmt.Errorf("could not perform learn request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAlreadyReported && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status %d from rspamd, expected 200/204/208", resp.StatusCode)
	}

	return nil
}

func (rs *Rspamd) doAuthenticated(req *http.Request) (*http.Response, error) {
	req.Header.Set("Password", rs.password)
	resp, err := rs.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("could not send request to rspamd: %w", err)
	}

	return resp, nil
}
