// SPDX-License-Identifier: GPL-3.0-or-later
package triage

import (
	"fmt"
	"strconv"
	"time"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"
	"github.com/CrawX/go-nimbusrelay/mail"

	"github.com/sirupsen/logrus"
)

const (
	CheckConcurrency = 16
	LearnConcurrency = 8
)

// Triage classifies the latest mails of a set of folders and moves the spam out of them. Mails are
// remembered by their id hash so every mail is classified only once.
type Triage struct {
	mailbox     domain.Mailbox
	classifier  domain.ConcurrentSpamClassifier
	persistence domain.Persistence

	configuration *configuration

	l *logrus.Logger
}

type FolderReport struct {
	Folder  string `json:"folder"`
	Checked int    `json:"checked"`
	Skipped int    `json:"skipped"`
	Spam    int    `json:"spam"`
	Moved   int    `json:"moved"`
	Errors  int    `json:"errors"`
}

type Classified struct {
	Folder  string                     `json:"folder"`
	Id      string                     `json:"id"`
	Subject string                     `json:"subject"`
	Result  *domain.SpamAnalysisResult `json:"result"`
	Moved   bool                       `json:"moved"`
}

type Report struct {
	Folders []*FolderReport `json:"folders"`
	Mails   []*Classified   `json:"mails"`
}

type pending struct {
	message    *domain.Message
	subject    string
	mailIdHash string
}

func New(mailbox domain.Mailbox, classifier domain.ConcurrentSpamClassifier, persistence domain.Persistence, configFunc ...ConfigFunc) (*Triage, error) {
	config := &configuration{Concurrency: CheckConcurrency}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Triage{
		mailbox:       mailbox,
		classifier:    classifier,
		persistence:   persistence,
		configuration: config,
		l:             log.Logger(log.LOG_TRIAGE),
	}, nil
}

func (t *Triage) Run(folders []string, limit int) (*Report, error) {
	report := &Report{Folders: []*FolderReport{}, Mails: []*Classified{}}

	for _, f := range folders {
		folderReport := &FolderReport{Folder: f}
		report.Folders = append(report.Folders, folderReport)

		mails, err := t.newMails(f, domain.Classified, limit, folderReport)
		if err != nil {
			return report, err
		}

		if len(mails) == 0 {
			t.l.WithFields(logrus.Fields{"folder": f, "skipped": folderReport.Skipped}).Info("Folder contains no new mails")
			continue
		}

		start := time.Now()
		rawMails := make([][]byte, len(mails))
		for i, m := range mails {
			rawMails[i] = m.message.Raw
		}
		results := t.classifier.ClassifyAll(rawMails, t.configuration.Concurrency)

		saveClassifications := []domain.SaveClassification{}
		for i, m := range mails {
			result := results[i]
			baseLogger := t.l.WithFields(logrus.Fields{"folder": f, "subject": mail.ShortSubject(m.subject)})
			if result == nil || result.Error != nil {
				folderReport.Errors++
				baseLogger.WithField("error", resultError(result)).Warn("Could not classify mail")
				continue
			}

			folderReport.Checked++
			baseLogger.WithFields(logrus.Fields{"classification": result.Classification, "confidence": result.Confidence}).Debug("Classified mail")

			classified := &Classified{Folder: f, Id: m.message.Id, Subject: m.subject, Result: result}
			report.Mails = append(report.Mails, classified)

			if result.IsSpam() {
				folderReport.Spam++
				classified.Moved = t.moveSpam(f, m, baseLogger)
				if classified.Moved {
					folderReport.Moved++
				}
			}

			saveClassifications = append(saveClassifications, domain.SaveClassification{
				Class:          domain.Classified,
				Uid:            uid(m.message.Id),
				MailIdHash:     m.mailIdHash,
				FolderName:     f,
				Subject:        m.subject,
				Classification: result.Classification,
				Confidence:     result.Confidence,
				Reason:         result.Reason,
			})
		}

		// Only then mark the mails in the database
		err = t.save(saveClassifications)
		if err != nil {
			return report, err
		}

		t.l.WithFields(logrus.Fields{
			"folder":   f,
			"duration": time.Since(start),
			"checked":  folderReport.Checked,
			"spam":     folderReport.Spam,
			"moved":    folderReport.Moved,
			"errors":   folderReport.Errors,
		}).Info("Checked folder")
	}

	return report, nil
}

func (t *Triage) moveSpam(folder string, m *pending, l *logrus.Entry) bool {
	if !t.configuration.MoveSpam {
		return false
	}
	if folder == t.configuration.SpamFolder {
		return false
	}
	if t.configuration.DryRun {
		l.Info("Not moving spam mail due to dry-run")
		return false
	}

	_, err := t.mailbox.MoveEmail(m.message.Id, folder, t.configuration.SpamFolder)
	if err != nil {
		l.WithField("error", err).Warn("Could not move spam mail")
		return false
	}

	l.WithField("destination", t.configuration.SpamFolder).Info("Moved spam mail")
	return true
}

// Learn feeds the latest mails of the given folders to the classifier as spam or ham.
func (t *Triage) Learn(learnType domain.LearnType, folders []string, limit int) error {
	var class domain.MailClass
	switch learnType {
	case domain.LearnSpam:
		class = domain.LearnedSpam
	case domain.LearnHam:
		class = domain.LearnedHam
	default:
		return fmt.Errorf("unsupported learn type %v", learnType)
	}

	for _, f := range folders {
		baseFolderLogger := t.l.WithFields(logrus.Fields{"folder": f, "learntype": learnType})

		mails, err := t.newMails(f, class, limit, &FolderReport{})
		if err != nil {
			return err
		}

		if len(mails) == 0 {
			baseFolderLogger.Info("Folder contains no new mails to learn")
			continue
		}

		if t.configuration.DryRun {
			baseFolderLogger.WithField("newmails", len(mails)).Info("Not learning mails due to dry-run")
			continue
		}

		start := time.Now()
		rawMails := make([][]byte, len(mails))
		for i, m := range mails {
			rawMails[i] = m.message.Raw
		}
		learnResults := t.classifier.LearnAll(learnType, rawMails, LearnConcurrency)

		saveClassifications := []domain.SaveClassification{}
		for i, m := range mails {
			if learnResults[i] != nil {
				return fmt.Errorf(`could not learn mail "%s": %w`, mail.ShortSubject(m.subject), learnResults[i])
			}
			saveClassifications = append(saveClassifications, domain.SaveClassification{
				Class:      class,
				Uid:        uid(m.message.Id),
				MailIdHash: m.mailIdHash,
				FolderName: f,
				Subject:    m.subject,
			})
		}

		err = t.save(saveClassifications)
		if err != nil {
			return err
		}

		baseFolderLogger.WithFields(logrus.Fields{"duration": time.Since(start), "newmails": len(mails)}).Info("Learned mails")
	}

	return nil
}

// newMails returns the mails of folder that have not been stored with class yet.
func (t *Triage) newMails(folder string, class domain.MailClass, limit int, report *FolderReport) ([]*pending, error) {
	messages, err := t.mailbox.GetEmails(folder, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get mails in %s: %w", folder, err)
	}

	mails := make([]*pending, 0, len(messages))
	hashes := []string{}
	for _, msg := range messages {
		subject, mailIdHash, err := mail.MailHeaderInfos(msg.Raw)
		if err != nil {
			t.l.WithFields(logrus.Fields{"folder": folder, "id": msg.Id, "error": err}).Debug("Mail has no id headers, cannot be remembered")
			subject = msg.Subject
		} else {
			hashes = append(hashes, mailIdHash)
		}
		mails = append(mails, &pending{message: msg, subject: subject, mailIdHash: mailIdHash})
	}

	if t.persistence == nil || len(hashes) == 0 {
		return mails, nil
	}

	known, err := t.persistence.HashesExist(class, hashes)
	if err != nil {
		return nil, fmt.Errorf("could not look up known mails: %w", err)
	}

	newMails := mails[:0]
	for _, m := range mails {
		if m.mailIdHash != "" && known[m.mailIdHash] {
			report.Skipped++
			continue
		}
		newMails = append(newMails, m)
	}

	t.l.WithFields(logrus.Fields{"folder": folder, "mails": len(messages), "new": len(newMails)}).Debug("Listed mails in folder")

	return newMails, nil
}

func (t *Triage) save(saveClassifications []domain.SaveClassification) error {
	if t.persistence == nil || len(saveClassifications) == 0 {
		return nil
	}

	err := t.persistence.SaveClassifications(saveClassifications)
	if err != nil {
		return fmt.Errorf("could not save classifications: %w", err)
	}
	return nil
}

func uid(id string) uint32 {
	uid, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(uid)
}

func resultError(result *domain.SpamAnalysisResult) error {
	if result == nil {
		return fmt.Errorf("no result")
	}
	return result.Error
}
