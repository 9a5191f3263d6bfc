package content

import "time"

// Default returns the compiled-in portfolio content. Each call returns a
// fresh copy so callers may overlay a content file onto it.
func Default() *Content {
	return &Content{
		Meta: Meta{
			Title:       "Harish Bhatt | Frontend Developer Portfolio",
			Description: "Portfolio of Harish Bhatt, a frontend developer specializing in React, Next.js, and UI/UX design. Explore my projects, skills, and contact details.",
			Keywords:    []string{"Harish Bhatt", "Frontend Developer", "Next.js", "React", "Portfolio", "Web Developer Nepal", "UI Designer"},
			Author:      "Harish Bhatt",
			URL:         "https://harish-bhatt.com.np/",
			Image:       "/og-image.png",
			Favicon:     "/favicon.png",
		},
		Profile: Profile{
			Name:     "Harish Bhatt",
			Initials: "HB",
			Role:     "Developer",
			Location: "Mahendranagar, Nepal",
			Paragraphs: []string{
				"Frontend Developer from DCM-1, Kanchanpur, Nepal with a love for creating beautiful and functional web experiences. I specialize in modern web technologies and have a keen eye for design and user experience.",
				"With expertise in **React**, **Next.js**, and modern CSS frameworks, I bring ideas to life through clean code and innovative solutions. I'm always eager to learn new technologies and take on challenging projects.",
			},
			Badges: []string{"Problem Solver", "Creative Thinker", "Team Player"},
			CVLink: "/cv.pdf",
		},
		Hero: Hero{
			Title:    TypedLine{Text: "Dev.Harish", Speed: 150 * time.Millisecond, Delay: 800 * time.Millisecond},
			Subtitle: TypedLine{Text: "Developer", Speed: 100 * time.Millisecond, Delay: 200 * time.Millisecond},
			Location: TypedLine{Text: "Mahendranagar, Nepal", Speed: 80 * time.Millisecond, Delay: 300 * time.Millisecond},
		},
		Values: []Value{
			{Icon: "code", Title: "Clean Code", Description: "Writing maintainable, scalable code that stands the test of time"},
			{Icon: "lightbulb", Title: "Innovation", Description: "Constantly exploring new technologies and creative solutions"},
			{Icon: "users", Title: "Collaboration", Description: "Building strong relationships with teams"},
			{Icon: "target", Title: "Results-Driven", Description: "Focused on delivering measurable business value"},
		},
		Skills: []SkillCategory{
			{
				Name:  "Frontend Development",
				Color: "purple-pink",
				Skills: []Skill{
					{Name: "React", Level: 85, Icon: "⚛️", Category: "frontend"},
					{Name: "Next.js", Level: 70, Icon: "▲", Category: "frontend"},
					{Name: "TypeScript", Level: 85, Icon: "📘", Category: "frontend"},
					{Name: "Tailwind CSS", Level: 90, Icon: "🎨", Category: "frontend"},
					{Name: "JavaScript", Level: 90, Icon: "🟨", Category: "frontend"},
					{Name: "HTML/CSS", Level: 96, Icon: "🌐", Category: "frontend"},
				},
			},
			{
				Name:  "Backend Development",
				Color: "purple-pink",
				Skills: []Skill{
					{Name: "Node.js", Level: 50, Icon: "🟢", Category: "backend"},
					{Name: "PostgreSQL, ORACLE, MYSQL", Level: 75, Icon: "🗄️", Category: "database"},
					{Name: "REST APIs", Level: 80, Icon: "🔗", Category: "backend"},
				},
			},
			{
				Name:  "Tools & Technologies",
				Color: "purple-pink",
				Skills: []Skill{
					{Name: "Git", Level: 80, Icon: "📚", Category: "tools"},
					{Name: "Figma", Level: 75, Icon: "🎨", Category: "tools"},
					{Name: "VS Code", Level: 95, Icon: "💻", Category: "tools"},
				},
			},
		},
		Projects: []Project{
			{
				Title:       "HamroSadhan",
				Description: "A modern vehicle rental platform built with Next.js and Prisma ORM",
				Image:       "/HamroSadhan.png",
				Tech:        []string{"Next.js", "Tailwind CSS", "Prisma with PostgreSQL", "TypeScript"},
				GitHub:      "https://github.com/Harish8848/HamroSadhan",
				Live:        "https://hamrosadhan.vercel.app",
			},
			{
				Title:       "RoomSathi",
				Description: "RoomSathi is a modern web application that connects room owners and room seekers in one simple and efficient platform, without the need for brokers or middlemen.",
				Tech:        []string{"Next.js", "TypeScript", "Prisma with PostgreSQL", "Tailwind CSS"},
				GitHub:      "#",
				Live:        "#",
			},
			{
				Title:       "MausamSathi",
				Description: "A beautiful weather dashboard with location-based forecasts, with Nepali language support.",
				Image:       "/MausamSathi.png",
				Tech:        []string{"Next.js", "OpenWeatherMap API", "Tailwind CSS", "TypeScript"},
				GitHub:      "https://github.com/Harish8848/weather-app",
				Live:        "#",
			},
		},
		Contact: Contact{
			Heading: "Let's Work Together",
			Pitch:   "I'm always interested in new opportunities and exciting projects. Let's discuss how we can bring your ideas to life!",
			Channels: []ContactChannel{
				{Icon: "mail", Title: "Email", Info: "bhattharish2059@gmail.com", Href: "mailto:bhattharish2059@gmail.com"},
				{Icon: "phone", Title: "Phone", Info: "+977 9868795658", Href: "tel:+9779868795658"},
				{Icon: "map-pin", Title: "Location", Info: "Dodhara Chandani-1, Nepal", Href: "https://maps.app.goo.gl/3QL9SEX14zoRHFhH9"},
			},
		},
		Socials: []SocialLink{
			{Icon: "github", Href: "", Label: "GitHub"},
			{Icon: "linkedin", Href: "https://www.linkedin.com/in/harish8848/", Label: "LinkedIn"},
			{Icon: "twitter", Href: "https://x.com/Harish8848_86", Label: "Twitter"},
		},
		Copyright: "© 2024 Harish Bhatt. All rights reserved.",
	}
}
