//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package notify

import (
	"context"

	"github.com/fleencorp/stream-service/internal/model"
)

type DBRepo interface {
	SaveNotification(ctx context.Context, notification *model.Notification) error
}
