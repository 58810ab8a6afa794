package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"

	"github.com/AndrivA89/mindnotes/internal/domain"
)

const noteFields = `n.id as id, n.title as title, n.content as content, n.summary as summary,
	n.color as color, u.id as user_id, n.created_at as created_at, n.updated_at as updated_at`

// Neo4jNoteRepository stores notes as (:User)-[:OWNS]->(:Note) in Neo4j.
type Neo4jNoteRepository struct {
	driver neo4j.DriverWithContext
	logger zerolog.Logger
}

func NewNeo4jNoteRepository(driver neo4j.DriverWithContext, logger zerolog.Logger) *Neo4jNoteRepository {
	return &Neo4jNoteRepository{
		driver: driver,
		logger: logger.With().Str("component", "neo4j").Logger(),
	}
}

func (r *Neo4jNoteRepository) session(ctx context.Context, mode neo4j.AccessMode) (neo4j.SessionWithContext, func()) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode})
	return session, func() {
		if err := session.Close(ctx); err != nil {
			r.logger.Error().Err(err).Msg("close neo4j session")
		}
	}
}

func (r *Neo4jNoteRepository) CreateNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	session, done := r.session(ctx, neo4j.AccessModeWrite)
	defer done()

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		now := time.Now().UTC()

		query := `
			MERGE (u:User {id: $user_id})
			CREATE (u)-[:OWNS]->(n:Note {
				id: randomUUID(),
				title: $title,
				content: $content,
				summary: $summary,
				color: $color,
				created_at: datetime($created_at),
				updated_at: datetime($created_at)
			})
			RETURN ` + noteFields

		params := map[string]interface{}{
			"user_id":    note.UserID,
			"title":      note.Title,
			"content":    note.Content,
			"summary":    summaryParam(note.Summary),
			"color":      string(note.Color),
			"created_at": now.Format(time.RFC3339Nano),
		}

		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return recordToNote(record)
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return result.(*domain.Note), nil
}

func (r *Neo4jNoteRepository) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	session, done := r.session(ctx, neo4j.AccessModeRead)
	defer done()

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User)-[:OWNS]->(n:Note {id: $id})
			RETURN ` + noteFields

		res, err := tx.Run(ctx, query, map[string]interface{}{"id": id})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return recordToNote(records[0])
	})
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return result.(*domain.Note), nil
}

func (r *Neo4jNoteRepository) UpdateNote(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error) {
	session, done := r.session(ctx, neo4j.AccessModeWrite)
	defer done()

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		sets := []string{"n.updated_at = datetime($updated_at)"}
		params := map[string]interface{}{
			"id":         id,
			"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		if patch.Title != nil {
			sets = append(sets, "n.title = $title")
			params["title"] = *patch.Title
		}
		if patch.Content != nil {
			sets = append(sets, "n.content = $content")
			params["content"] = *patch.Content
		}
		if patch.Color != nil {
			sets = append(sets, "n.color = $color")
			params["color"] = string(*patch.Color)
		}
		if patch.Summary != nil {
			sets = append(sets, "n.summary = $summary")
			params["summary"] = *patch.Summary
		}

		query := `
			MATCH (u:User)-[:OWNS]->(n:Note {id: $id})
			SET ` + strings.Join(sets, ", ") + `
			RETURN ` + noteFields

		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return recordToNote(records[0])
	})
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return result.(*domain.Note), nil
}

func (r *Neo4jNoteRepository) DeleteNote(ctx context.Context, id string) error {
	session, done := r.session(ctx, neo4j.AccessModeWrite)
	defer done()

	deleted, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (n:Note {id: $id})
			DETACH DELETE n
		`
		res, err := tx.Run(ctx, query, map[string]interface{}{"id": id})
		if err != nil {
			return nil, err
		}
		summary, err := res.Consume(ctx)
		if err != nil {
			return nil, err
		}
		return summary.Counters().NodesDeleted(), nil
	})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if deleted.(int) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *Neo4jNoteRepository) ListNotes(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	return r.SearchNotes(ctx, ownerID, "")
}

// SearchNotes matches query case-insensitively against title, content and
// summary. An empty query lists every note of the owner, newest first.
func (r *Neo4jNoteRepository) SearchNotes(ctx context.Context, ownerID, query string) ([]*domain.Note, error) {
	session, done := r.session(ctx, neo4j.AccessModeRead)
	defer done()

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		cypher := `
			MATCH (u:User {id: $user_id})-[:OWNS]->(n:Note)
			WHERE $query = ''
			   OR toLower(n.title) CONTAINS $query
			   OR toLower(n.content) CONTAINS $query
			   OR toLower(coalesce(n.summary, '')) CONTAINS $query
			RETURN ` + noteFields + `
			ORDER BY n.created_at DESC
		`
		params := map[string]interface{}{
			"user_id": ownerID,
			"query":   strings.ToLower(strings.TrimSpace(query)),
		}

		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		notes := []*domain.Note{}
		for res.Next(ctx) {
			note, err := recordToNote(res.Record())
			if err != nil {
				return nil, err
			}
			notes = append(notes, note)
		}
		if err = res.Err(); err != nil {
			return nil, err
		}
		return notes, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return result.([]*domain.Note), nil
}

func summaryParam(summary *string) interface{} {
	if summary == nil {
		return nil
	}
	return *summary
}

func recordToNote(record *neo4j.Record) (*domain.Note, error) {
	note := &domain.Note{}
	var ok bool

	values := record.AsMap()
	if note.ID, ok = values["id"].(string); !ok {
		return nil, fmt.Errorf("unexpected type for 'id' column")
	}
	note.Title, _ = values["title"].(string)
	note.Content, _ = values["content"].(string)
	note.UserID, _ = values["user_id"].(string)
	if color, ok := values["color"].(string); ok {
		note.Color = domain.Color(color)
	}
	if summary, ok := values["summary"].(string); ok {
		note.Summary = &summary
	}
	if note.CreatedAt, ok = values["created_at"].(time.Time); !ok {
		return nil, fmt.Errorf("unexpected type for 'created_at' column")
	}
	if note.UpdatedAt, ok = values["updated_at"].(time.Time); !ok {
		return nil, fmt.Errorf("unexpected type for 'updated_at' column")
	}
	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()
	return note, nil
}
