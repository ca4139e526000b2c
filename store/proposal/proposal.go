package proposal

import (
	"context"

	"beanstalk/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Proposal{})

		if err := tx.AutoMigrate(core.Proposal{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_proposal_id", "proposal_id").Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_proposal_space_end", "space", "end_at").Error; err != nil {
			return err
		}

		return nil
	})
}

// New new proposal store
func New(db *db.DB) core.ProposalStore {
	return &proposalStore{db: db}
}

type proposalStore struct {
	db *db.DB
}

func toUpdateParams(proposal *core.Proposal) map[string]interface{} {
	return map[string]interface{}{
		"title":        proposal.Title,
		"body":         proposal.Body,
		"choices":      proposal.Choices,
		"scores":       proposal.Scores,
		"scores_total": proposal.ScoresTotal,
		"state":        proposal.State,
		"snapshot":     proposal.Snapshot,
		"start_at":     proposal.Start,
		"end_at":       proposal.End,
	}
}

func (s *proposalStore) Save(ctx context.Context, proposal *core.Proposal) error {
	return s.db.Tx(func(tx *db.DB) error {
		var current core.Proposal
		err := tx.Update().Where("proposal_id = ?", proposal.ProposalID).First(&current).Error
		if gorm.IsRecordNotFoundError(err) {
			proposal.Version = 1
			return tx.Update().Create(proposal).Error
		}

		if err != nil {
			return err
		}

		version := current.Version + 1
		updates := toUpdateParams(proposal)
		updates["version"] = version

		r := tx.Update().Model(&current).Where("version = ?", current.Version).Updates(updates)
		if r.Error != nil {
			return r.Error
		}

		if r.RowsAffected == 0 {
			return db.ErrOptimisticLock
		}

		proposal.ID = current.ID
		proposal.CreatedAt = current.CreatedAt
		proposal.Version = version
		return nil
	})
}

func (s *proposalStore) Find(ctx context.Context, id string) (*core.Proposal, bool, error) {
	var proposal core.Proposal
	if err := s.db.View().Where("proposal_id = ?", id).First(&proposal).Error; err != nil {
		return nil, gorm.IsRecordNotFoundError(err), err
	}

	return &proposal, false, nil
}

func (s *proposalStore) List(ctx context.Context, space string, offset, limit int) ([]*core.Proposal, error) {
	query := s.db.View()
	if space != "" {
		query = query.Where("space = ?", space)
	}

	var proposals []*core.Proposal
	if err := query.Order("end_at DESC").Offset(offset).Limit(limit).Find(&proposals).Error; err != nil {
		return nil, err
	}

	return proposals, nil
}
