package application

type Application interface {
	SetUp() error
	Run() error
	TearDown() error
}
