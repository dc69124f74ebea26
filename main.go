// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"os"

	"github.com/CrawX/go-nimbusrelay/classifier"
	"github.com/CrawX/go-nimbusrelay/classifier/rspamd"
	"github.com/CrawX/go-nimbusrelay/classifier/spamassassin"
	"github.com/CrawX/go-nimbusrelay/config"
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"
	"github.com/CrawX/go-nimbusrelay/mail"
	"github.com/CrawX/go-nimbusrelay/mailbox"
	"github.com/CrawX/go-nimbusrelay/persistence"
	"github.com/CrawX/go-nimbusrelay/relay"
	"github.com/CrawX/go-nimbusrelay/session"
	"github.com/CrawX/go-nimbusrelay/triage"

	"github.com/sirupsen/logrus"
)

const (
	configFile   = "config.toml"
	settingsFile = ".env"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	if _, err := os.Stat(configFile); err != nil {
		logger.WithField("file", configFile).Info("No config file, using settings")
		runSettings(logger)
		return
	}

	conf, err := config.ReadConfig(configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	configs := []relay.ConfigFunc{relay.Persist(p)}
	if conf.Insecure {
		configs = append(configs, relay.SessionOptions(session.Insecure()))
	}
	if conf.Compress {
		configs = append(configs, relay.SessionOptions(session.Compress()))
	}
	if conf.NativeMove {
		configs = append(configs, relay.MailboxOptions(mailbox.NativeMove()))
	}

	if conf.ClassifierConfigured() {
		spamClassifier, err := newClassifier(conf)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not start spam classifier")
		}

		triageConfigs := []triage.ConfigFunc{}
		if conf.DryRun {
			triageConfigs = append(triageConfigs, triage.DryRun())
		}
		if conf.MoveSpam {
			triageConfigs = append(triageConfigs, triage.MoveSpam(conf.SpamFolder))
		}
		configs = append(configs, relay.Classifier(&classifier.GoRoutineSpamClassifier{SpamClassifier: spamClassifier}, triageConfigs...))
	}

	r, err := relay.New(conf.ConnectionConfig(), configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not create relay")
	}

	err = r.Connect()
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to imap server")
	}
	defer r.Disconnect()

	overview(logger, r, conf.CheckFolders, conf.EmailLimit)

	if !conf.ClassifierConfigured() {
		logger.Info("No spam classifier configured, not checking mails")
		return
	}

	if len(conf.SpamLearnFolders) > 0 {
		logger.WithFields(logrus.Fields{"folders": conf.SpamLearnFolders, "dryrun": conf.DryRun}).Info("Learning spam")
		err = r.Learn(domain.LearnSpam, conf.SpamLearnFolders, conf.EmailLimit)
		if err != nil {
			logger.WithField("error", err).Fatal("Learning spam failed")
		}
	}

	if len(conf.HamLearnFolders) > 0 {
		logger.WithFields(logrus.Fields{"folders": conf.HamLearnFolders, "dryrun": conf.DryRun}).Info("Learning ham")
		err = r.Learn(domain.LearnHam, conf.HamLearnFolders, conf.EmailLimit)
		if err != nil {
			logger.WithField("error", err).Fatal("Learning ham failed")
		}
	}

	logger.WithFields(logrus.Fields{"folders": conf.CheckFolders, "dryrun": conf.DryRun, "spamfolder": conf.SpamFolder}).Info("Checking mails for spam")
	if conf.DryRun {
		logger.Warn("Skipping moving spam due to dry-run")
	}
	report, err := r.Triage(conf.CheckFolders, conf.EmailLimit)
	if err != nil {
		logger.WithField("error", err).Fatal("Checking spam failed")
	}

	for _, f := range report.Folders {
		logger.WithFields(logrus.Fields{
			"folder":  f.Folder,
			"checked": f.Checked,
			"skipped": f.Skipped,
			"spam":    f.Spam,
			"moved":   f.Moved,
			"errors":  f.Errors,
		}).Info("Checked folder")
	}
}

// runSettings connects with the key=value settings file and only prints the overview.
func runSettings(logger *logrus.Logger) {
	settings, err := config.LoadSettings(settingsFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load settings")
	}

	cfg, err := settings.ConnectionConfig()
	if err != nil {
		logger.WithField("error", err).Fatal("Invalid settings")
	}

	r, err := relay.New(cfg)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not create relay")
	}

	err = r.Connect()
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to imap server")
	}
	defer r.Disconnect()

	overview(logger, r, []string{"INBOX"}, mailbox.DefaultLimit)
}

func overview(logger *logrus.Logger, r *relay.Relay, folders []string, limit int) {
	list, err := r.ListFolders(false)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not list folders")
	}
	for _, f := range list {
		logger.WithFields(logrus.Fields{"folder": f.Name, "type": f.Type, "messages": r.GetFolderCount(f.Name)}).Info(f.DisplayName)
	}

	for _, f := range folders {
		messages, err := r.GetEmails(f, limit)
		if err != nil {
			logger.WithFields(logrus.Fields{"folder": f, "error": err}).Warn("Could not list mails")
			continue
		}
		for _, m := range messages {
			logger.WithFields(logrus.Fields{"folder": f, "id": m.Id, "from": m.From, "date": m.Date}).Info(mail.ShortSubject(m.Subject))
		}
	}
}

func newClassifier(conf *config.Config) (domain.SpamClassifier, error) {
	if conf.RspamdController != "" {
		rs, err := rspamd.NewRspamd(conf.RspamdController, conf.RspamdPassword)
		if err != nil {
			return nil, err
		}
		return rs, nil
	}

	sa, err := spamassassin.NewSpamassassin(conf.SpamassassinHost, conf.SpamassassinRequiredScore)
	if err != nil {
		return nil, err
	}
	return sa, nil
}
