//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(AnalysisService), "*"),
	wire.Bind(new(IAnalysisService), new(*AnalysisService)),

	NewSearchService,
	wire.Bind(new(ISearchService), new(*SearchService)),

	NewOssService,
	wire.Bind(new(IOssService), new(*OssService)),
)
