// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var timeNow = time.Now

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	// also keeps a :memory: database alive for the lifetime of the pool
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

func (p *Persistence) AllFolders() ([]*domain.KnownFolder, error) {
	dbFolders := []struct {
		Name      string
		Delimiter string
		LastSeen  time.Time `db:"lastseen"`
	}{}

	err := p.db.Select(
		&dbFolders,
		`SELECT name, delimiter, lastseen FROM folders ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	folders := []*domain.KnownFolder{}
	for _, f := range dbFolders {
		folders = append(
			folders,
			&domain.KnownFolder{
				Name:      f.Name,
				Delimiter: f.Delimiter,
				LastSeen:  f.LastSeen,
			},
		)
	}

	p.l.WithField("Count", len(folders)).Debug("Found folders")

	return folders, nil
}

func (p *Persistence) SaveFolder(name string, delimiter string) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO folders (name, delimiter, lastseen) VALUES (?, ?, ?)",
		name,
		delimiter,
		timeNow().UTC(),
	)

	if err != nil {
		return fmt.Errorf("could not save folder: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Name": name, "Delimiter": delimiter}).Debug("Persisted folder")
	return nil
}

func (p *Persistence) GetClassificationsInFolder(class domain.MailClass, folder string) ([]*domain.SavedClassification, error) {
	dbClassifications := []struct {
		Id             int64
		Class          int
		Uid            uint32
		MailIdHash     string
		FolderName     string
		Subject        string
		Classification string
		Confidence     float64
		Reason         string
	}{}

	err := p.db.Select(
		&dbClassifications,
		`SELECT id, class, uid, mailidhash, foldername, subject, classification, confidence, reason
		FROM classifications WHERE class = ? AND foldername = ? ORDER BY id`,
		int(class),
		folder,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	classifications := []*domain.SavedClassification{}
	for _, c := range dbClassifications {
		classifications = append(
			classifications,
			&domain.SavedClassification{
				Id:             c.Id,
				Class:          domain.MailClass(c.Class),
				Uid:            c.Uid,
				MailIdHash:     c.MailIdHash,
				FolderName:     c.FolderName,
				Subject:        c.Subject,
				Classification: c.Classification,
				Confidence:     c.Confidence,
				Reason:         c.Reason,
			},
		)
	}

	return classifications, nil
}

func (p *Persistence) HashesExist(class domain.MailClass, mailIdHashes []string) (map[string]bool, error) {
	result := map[string]bool{}
	if len(mailIdHashes) == 0 {
		return result, nil
	}

	qry, args, err := sqlx.Named(
		"SELECT mailidhash FROM classifications WHERE class = :class AND mailidhash IN (:hashes)",
		map[string]interface{}{
			"class":  int(class),
			"hashes": mailIdHashes,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("could not create query: %w", err)
	}

	qry, args, err = sqlx.In(qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not replace IN in query: %w", err)
	}

	hashes := []string{}
	err = p.db.Select(
		&hashes,
		qry,
		args...,
	)

	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	for _, hash := range hashes {
		result[hash] = true
	}

	return result, nil
}

func (p *Persistence) SaveClassifications(classifications []domain.SaveClassification) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO classifications(class, uid, mailidhash, foldername, subject, classification, confidence, reason)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}
	defer stmt.Close()

	for _, c := range classifications {
		_, err := stmt.Exec(
			int(c.Class), c.Uid, c.MailIdHash, c.FolderName, c.Subject, c.Classification, c.Confidence, c.Reason,
		)

		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save classification: %w", err))
		}
	}

	p.l.WithField("Count", len(classifications)).Debug("Persisted classifications")

	return txEnd(tx, nil)
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
