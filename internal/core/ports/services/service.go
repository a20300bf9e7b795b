package services

// ServiceContainer holds instances of all the application services. It is the
// single wiring point handed to the handler layer.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Reporting   ReportingSvcFacade
}
