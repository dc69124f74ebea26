// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"fmt"

	"github.com/CrawX/go-nimbusrelay/catalog"
	"github.com/CrawX/go-nimbusrelay/delivery"
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/mailbox"
	"github.com/CrawX/go-nimbusrelay/session"
	"github.com/CrawX/go-nimbusrelay/triage"
)

type ConfigFunc func(c *configuration) error

func SessionOptions(configFunc ...session.ConfigFunc) ConfigFunc {
	return func(c *configuration) error {
		c.Session = append(c.Session, configFunc...)
		return nil
	}
}

func CatalogOptions(configFunc ...catalog.ConfigFunc) ConfigFunc {
	return func(c *configuration) error {
		c.Catalog = append(c.Catalog, configFunc...)
		return nil
	}
}

func MailboxOptions(configFunc ...mailbox.ConfigFunc) ConfigFunc {
	return func(c *configuration) error {
		c.Mailbox = append(c.Mailbox, configFunc...)
		return nil
	}
}

func DeliveryOptions(configFunc ...delivery.ConfigFunc) ConfigFunc {
	return func(c *configuration) error {
		c.Delivery = append(c.Delivery, configFunc...)
		return nil
	}
}

// Persist remembers discovered folders and classification results.
func Persist(persistence domain.Persistence) ConfigFunc {
	return func(c *configuration) error {
		if persistence == nil {
			return fmt.Errorf("persistence cannot be nil")
		}
		c.Persistence = persistence
		c.Catalog = append(c.Catalog, catalog.Persist(persistence))
		return nil
	}
}

// Classifier enables Triage and Learn.
func Classifier(classifier domain.ConcurrentSpamClassifier, configFunc ...triage.ConfigFunc) ConfigFunc {
	return func(c *configuration) error {
		if classifier == nil {
			return fmt.Errorf("classifier cannot be nil")
		}
		c.Classifier = classifier
		c.Triage = append(c.Triage, configFunc...)
		return nil
	}
}

type configuration struct {
	Session  []session.ConfigFunc
	Catalog  []catalog.ConfigFunc
	Mailbox  []mailbox.ConfigFunc
	Delivery []delivery.ConfigFunc
	Triage   []triage.ConfigFunc

	Persistence domain.Persistence
	Classifier  domain.ConcurrentSpamClassifier
}
