package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_enum_user_role",
		SQL: `DO $$ BEGIN
  CREATE TYPE user_role AS ENUM ('patient', 'radiologist', 'admin');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_user_status",
		SQL: `DO $$ BEGIN
  CREATE TYPE user_status AS ENUM ('active', 'inactive', 'suspended');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_scan_status",
		SQL: `DO $$ BEGIN
  CREATE TYPE scan_status AS ENUM ('pending', 'in_progress', 'ai_analyzed', 'radiologist_reviewed', 'completed', 'cancelled');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_urgency_level",
		SQL: `DO $$ BEGIN
  CREATE TYPE urgency_level AS ENUM ('routine', 'urgent', 'emergent');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_examination_type",
		SQL: `DO $$ BEGIN
  CREATE TYPE examination_type AS ENUM ('xray', 'ct', 'mri', 'pet', 'ultrasound');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_body_region",
		SQL: `DO $$ BEGIN
  CREATE TYPE body_region AS ENUM ('chest', 'head', 'abdomen', 'pelvis', 'spine', 'extremities');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_feedback_type",
		SQL: `DO $$ BEGIN
  CREATE TYPE feedback_type AS ENUM ('accept', 'partial_override', 'full_override', 'reject');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_diagnosis_class",
		SQL: `DO $$ BEGIN
  CREATE TYPE diagnosis_class AS ENUM ('normal', 'tuberculosis', 'lung_cancer', 'other_abnormality', 'inconclusive');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_enum_report_status",
		SQL: `DO $$ BEGIN
  CREATE TYPE report_status AS ENUM ('draft', 'published');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  email         VARCHAR(255) NOT NULL UNIQUE,
  password_hash VARCHAR(255) NOT NULL,
  role          user_role    NOT NULL,
  status        user_status  NOT NULL DEFAULT 'active',
  first_name    VARCHAR(100) NOT NULL,
  last_name     VARCHAR(100) NOT NULL,
  phone         VARCHAR(20),
  date_of_birth DATE,
  created_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
  last_login    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_users_role",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);`,
	},
	{
		Name: "create_table_patient_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS patient_profiles (
  id                      UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id                 UUID         NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  patient_id              VARCHAR(50)  NOT NULL UNIQUE,
  age_years               INTEGER,
  weight_kg               NUMERIC(5,2),
  height_cm               NUMERIC(5,2),
  gender                  VARCHAR(50),
  address                 TEXT,
  emergency_contact_name  VARCHAR(200),
  emergency_contact_phone VARCHAR(20),
  blood_type              VARCHAR(5),
  allergies               TEXT[],
  medical_history         TEXT,
  created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_radiologist_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS radiologist_profiles (
  id                  UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id             UUID         NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  license_number      VARCHAR(100) NOT NULL UNIQUE,
  specialization      VARCHAR(200),
  years_of_experience INTEGER,
  institution         VARCHAR(200),
  created_at          TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_scans",
		SQL: `CREATE TABLE IF NOT EXISTS scans (
  id                              UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  patient_id                      UUID             NOT NULL REFERENCES patient_profiles(id) ON DELETE CASCADE,
  scan_number                     VARCHAR(50)      NOT NULL UNIQUE,
  examination_type                examination_type NOT NULL,
  body_region                     body_region      NOT NULL,
  urgency_level                   urgency_level    NOT NULL DEFAULT 'routine',
  presenting_symptoms             TEXT[],
  current_medications             TEXT[],
  previous_surgeries              TEXT[],
  scan_date                       TIMESTAMPTZ      NOT NULL DEFAULT now(),
  imaging_facility                VARCHAR(200),
  referring_physician             VARCHAR(200),
  clinical_notes                  TEXT,
  status                          scan_status      NOT NULL DEFAULT 'pending',
  assigned_radiologist_id         UUID             REFERENCES radiologist_profiles(id),
  synced_to_storage               BOOLEAN          NOT NULL DEFAULT false,
  storage_sync_date               TIMESTAMPTZ,
  storage_paths                   JSONB,
  created_at                      TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at                      TIMESTAMPTZ      NOT NULL DEFAULT now(),
  ai_analysis_started_at          TIMESTAMPTZ,
  ai_analysis_completed_at        TIMESTAMPTZ,
  radiologist_review_started_at   TIMESTAMPTZ,
  radiologist_review_completed_at TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_scans_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_scans_status ON scans (status);`,
	},
	{
		Name: "create_index_scans_patient",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_scans_patient ON scans (patient_id);`,
	},
	{
		Name: "create_table_scan_images",
		SQL: `CREATE TABLE IF NOT EXISTS scan_images (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  scan_id         UUID        NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
  image_path      TEXT        NOT NULL,
  image_order     INTEGER     NOT NULL DEFAULT 1,
  file_size_bytes BIGINT      CHECK (file_size_bytes >= 0),
  image_width     INTEGER,
  image_height    INTEGER,
  image_format    VARCHAR(10),
  dicom_metadata  JSONB,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_scan_images_scan",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_scan_images_scan ON scan_images (scan_id);`,
	},
	{
		Name: "create_table_ai_predictions",
		SQL: `CREATE TABLE IF NOT EXISTS ai_predictions (
  id                  UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  scan_id             UUID          NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
  model_name          VARCHAR(100)  NOT NULL,
  model_version       VARCHAR(50)   NOT NULL,
  predicted_class     diagnosis_class NOT NULL,
  confidence_score    NUMERIC(5,4)  NOT NULL CHECK (confidence_score >= 0 AND confidence_score <= 1),
  class_probabilities JSONB,
  inference_timestamp TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_ai_predictions_scan",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ai_predictions_scan ON ai_predictions (scan_id, inference_timestamp DESC);`,
	},
	{
		Name: "create_table_gradcam_outputs",
		SQL: `CREATE TABLE IF NOT EXISTS gradcam_outputs (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  ai_prediction_id UUID        NOT NULL REFERENCES ai_predictions(id) ON DELETE CASCADE,
  scan_image_id    UUID        REFERENCES scan_images(id) ON DELETE SET NULL,
  heatmap_path     TEXT,
  overlay_path     TEXT,
  target_class     diagnosis_class,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_radiologist_feedback",
		SQL: `CREATE TABLE IF NOT EXISTS radiologist_feedback (
  id                     UUID            PRIMARY KEY DEFAULT uuid_generate_v4(),
  scan_id                UUID            NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
  radiologist_id         UUID            NOT NULL REFERENCES radiologist_profiles(id) ON DELETE CASCADE,
  feedback_type          feedback_type   NOT NULL,
  ai_diagnosis           VARCHAR(50),
  radiologist_diagnosis  diagnosis_class NOT NULL,
  clinical_notes         TEXT,
  disagreement_reason    TEXT,
  additional_findings    TEXT,
  radiologist_confidence NUMERIC(3,2)    CHECK (radiologist_confidence >= 0 AND radiologist_confidence <= 1),
  image_quality_rating   INTEGER         CHECK (image_quality_rating >= 1 AND image_quality_rating <= 5),
  feedback_timestamp     TIMESTAMPTZ     NOT NULL DEFAULT now(),
  created_at             TIMESTAMPTZ     NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_feedback_scan",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_feedback_scan ON radiologist_feedback (scan_id);`,
	},
	{
		Name: "create_table_reports",
		SQL: `CREATE TABLE IF NOT EXISTS reports (
  id                  UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  scan_id             UUID          NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
  report_number       VARCHAR(100)  NOT NULL UNIQUE,
  report_type         VARCHAR(50)   NOT NULL DEFAULT 'preliminary_ai',
  report_status       report_status NOT NULL DEFAULT 'draft',
  report_title        TEXT          NOT NULL,
  clinical_indication TEXT,
  technique           TEXT,
  findings            TEXT,
  impression          TEXT,
  recommendations     TEXT,
  edit_history        JSONB         NOT NULL DEFAULT '[]'::jsonb,
  published_at        TIMESTAMPTZ,
  created_at          TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_reports_scan",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_reports_scan ON reports (scan_id, created_at DESC);`,
	},
	{
		Name: "create_table_audit_logs",
		SQL: `CREATE TABLE IF NOT EXISTS audit_logs (
  id          UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id     UUID         REFERENCES users(id) ON DELETE SET NULL,
  action      VARCHAR(100) NOT NULL,
  entity_type VARCHAR(50)  NOT NULL,
  entity_id   UUID,
  detail      JSONB,
  created_at  TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_notifications",
		SQL: `CREATE TABLE IF NOT EXISTS notifications (
  id         UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID         NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  type       VARCHAR(50)  NOT NULL,
  title      VARCHAR(200) NOT NULL,
  body       TEXT         NOT NULL,
  read       BOOLEAN      NOT NULL DEFAULT false,
  created_at TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_notifications_user",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, read);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
