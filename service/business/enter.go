package business

type ServiceGroup struct {
	CustomerService CustomerService
	QuoteService    QuoteService
}

func NewServiceGroup() ServiceGroup {
	return ServiceGroup{
		CustomerService: NewCustomerService(),
		QuoteService:    NewQuoteService(),
	}
}
