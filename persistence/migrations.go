// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import migrate "github.com/rubenv/sql-migrate"

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_folders",
			Up: []string{
				`CREATE TABLE folders (
					name TEXT NOT NULL PRIMARY KEY,
					delimiter TEXT NOT NULL,
					lastseen DATETIME NOT NULL
				)`,
			},
			Down: []string{`DROP TABLE folders`},
		},
		{
			Id: "2_classifications",
			Up: []string{
				`CREATE TABLE classifications (
					id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
					class INTEGER NOT NULL,
					uid INTEGER NOT NULL,
					mailidhash TEXT NOT NULL,
					foldername TEXT NOT NULL,
					subject TEXT NOT NULL,
					classification TEXT NOT NULL,
					confidence REAL NOT NULL,
					reason TEXT NOT NULL
				)`,
				`CREATE INDEX classifications_hash ON classifications (class, mailidhash)`,
				`CREATE INDEX classifications_folder ON classifications (class, foldername)`,
			},
			Down: []string{`DROP TABLE classifications`},
		},
	},
}
