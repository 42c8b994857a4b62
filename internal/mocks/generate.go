package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TeamRepository --dir ../domain/roster --output domain/roster --outpkg rostermock --filename team_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name BowlerRepository --dir ../domain/roster --output domain/roster --outpkg rostermock --filename bowler_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/match --output domain/match --outpkg matchmock --filename repository_mock.go
