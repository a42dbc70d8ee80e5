package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/wandersoncferreira/marathon-tracker/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const testDBName = "marathon_tracker"

type Suite struct {
	DB         *sql.DB
	DBPool     *pgxpool.Pool
	dockerPool *dockertest.Pool
	teardown   []func()
}

func newSuite(ctx context.Context) *Suite {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	suite.DBPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: testDBName,
	})
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to create db pool: %s", err)
	}

	return suite
}

func (s *Suite) cleanup() {
	if s.DBPool != nil {
		s.DBPool.Close()
	}
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	res, err := db.Exec(initSQL)
	if err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("get rows affected: %s", err)
	}

	log.Printf("postgres setup result: %d\n", numRows)

	if db.Ping() != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.activity
(
    id             BIGINT PRIMARY KEY,
    name           VARCHAR          NOT NULL,
    type           VARCHAR          NOT NULL,
    start_date     TIMESTAMPTZ      NOT NULL,
    distance       DOUBLE PRECISION NOT NULL,
    moving_time    INTEGER          NOT NULL,
    elapsed_time   INTEGER          NOT NULL,
    avg_speed      DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_heart_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
    avg_watts      DOUBLE PRECISION NOT NULL DEFAULT 0
);

ALTER TABLE public.activity OWNER TO postgres;
CREATE INDEX ix_activity_start_date ON public.activity USING btree (start_date);

CREATE TABLE public.daily_tracking
(
    date             VARCHAR PRIMARY KEY,
    rating           INTEGER     NOT NULL DEFAULT 0,
    notes            VARCHAR     NOT NULL DEFAULT '',
    adherence        VARCHAR     NOT NULL,
    planned_calories INTEGER     NOT NULL DEFAULT 0,
    actual_calories  INTEGER     NOT NULL DEFAULT 0,
    day_type         VARCHAR     NOT NULL DEFAULT '',
    meals            JSONB       NOT NULL DEFAULT '{}',
    created_at       TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.daily_tracking OWNER TO postgres;

CREATE TABLE public.nutrition_goals
(
    id                   INTEGER PRIMARY KEY,
    weekly_weight_target VARCHAR     NOT NULL DEFAULT '',
    macro_targets        VARCHAR     NOT NULL DEFAULT '',
    notes                VARCHAR     NOT NULL DEFAULT '',
    created_at           TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.nutrition_goals OWNER TO postgres;

CREATE TABLE public.carb_intake
(
    activity_id BIGINT PRIMARY KEY,
    carb_grams  INTEGER     NOT NULL,
    notes       VARCHAR     NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.carb_intake OWNER TO postgres;

CREATE TABLE public.carb_guidelines
(
    id                   INTEGER PRIMARY KEY,
    carbs_per_30_min     DOUBLE PRECISION NOT NULL,
    min_duration_minutes INTEGER          NOT NULL,
    enabled              BOOLEAN          NOT NULL,
    created_at           TIMESTAMPTZ      NOT NULL
);

ALTER TABLE public.carb_guidelines OWNER TO postgres;
`
