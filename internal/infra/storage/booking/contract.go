package booking

import "github.com/redzuankdv/Parking-App-FrontEnd/pkg/txmanager"

// DBExecutor *sql.DB или *sql.Tx из контекста
type DBExecutor = txmanager.DBExecutor
